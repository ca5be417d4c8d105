package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the primeify domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrUsage is returned when the command line cannot be interpreted.
	ErrUsage = errors.New("primeify: usage error")

	// ErrInvalidWorkerCount is returned when the worker count is not positive.
	ErrInvalidWorkerCount = errors.New("primeify: invalid worker count")

	// ErrInvalidLength is returned when a buffer length is negative.
	ErrInvalidLength = errors.New("primeify: invalid buffer length")

	// ErrInvalidPartition is returned when ranges do not tile the buffer exactly.
	ErrInvalidPartition = errors.New("primeify: invalid partition")

	// ErrUnknownStrategy is returned when a strategy name is not recognized.
	ErrUnknownStrategy = errors.New("primeify: unknown strategy")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("primeify: invalid configuration")
)

// Codec error codes. They double as process exit statuses.
const (
	CodeUnknownFormat = 10
	CodeOpen          = 11
	CodeDecode        = 12
	CodeCreate        = 20
	CodeEncode        = 21
	CodeCommit        = 22
)

// Process exit statuses that are not codec specific.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitWorkerFailure = 70
)

// CodecError reports a decode or encode failure together with a
// codec-specific code.
type CodecError struct {
	Op   string // "decode" or "encode"
	Path string
	Code int
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("primeify: %s %s: error %d: %v", e.Op, e.Path, e.Code, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// WorkerError reports a worker that did not run its range to completion.
type WorkerError struct {
	Worker int
	Range  Range
	Cause  any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("primeify: worker %d failed on %s: %v", e.Worker, e.Range, e.Cause)
}

// ExitCode maps an error returned by a run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Code
	}
	var workerErr *WorkerError
	if errors.As(err, &workerErr) {
		return ExitWorkerFailure
	}
	return ExitUsage
}
