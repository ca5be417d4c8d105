package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"usage", fmt.Errorf("%w: no arguments", ErrUsage), ExitUsage},
		{"workers", fmt.Errorf("%w: 0", ErrInvalidWorkerCount), ExitUsage},
		{"codec", &CodecError{Op: "decode", Path: "a.png", Code: CodeDecode, Err: errors.New("bad")}, CodeDecode},
		{"wrapped codec", fmt.Errorf("run: %w", &CodecError{Op: "encode", Code: CodeCommit}), CodeCommit},
		{"worker", &WorkerError{Worker: 2, Range: Range{Start: 4, End: 8}, Cause: "boom"}, ExitWorkerFailure},
		{"other", errors.New("something else"), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCodecError_Unwrap(t *testing.T) {
	err := &CodecError{Op: "decode", Path: "in.png", Code: CodeOpen, Err: os.ErrNotExist}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("CodecError should unwrap to its cause")
	}
	want := "primeify: decode in.png: error 11: file does not exist"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWorkerError_Error(t *testing.T) {
	err := &WorkerError{Worker: 1, Range: Range{Start: 3, End: 6}, Cause: "boom"}
	want := "primeify: worker 1 failed on [3,6): boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPixel(t *testing.T) {
	p := Pixel(0x80ABCDEF)
	if p.Color() != 0xABCDEF {
		t.Errorf("Color() = %#x", p.Color())
	}
	if p.Alpha() != 0x80 {
		t.Errorf("Alpha() = %#x", p.Alpha())
	}
	if OpaqueBlack.Color() != 0 || OpaqueBlack.Alpha() != 0xFF {
		t.Errorf("OpaqueBlack = %#x", uint32(OpaqueBlack))
	}
}

func TestRange(t *testing.T) {
	r := Range{Start: 2, End: 5}
	if r.Len() != 3 || r.Empty() {
		t.Errorf("Range %s: Len=%d Empty=%v", r, r.Len(), r.Empty())
	}
	if !(Range{Start: 5, End: 5}).Empty() {
		t.Error("zero-length range should be empty")
	}
}

func TestNewImage(t *testing.T) {
	img := NewImage(4, 3)
	if img.Len() != 12 {
		t.Errorf("Len() = %d, want 12", img.Len())
	}
}
