package codec

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/bft-labs/primeify/internal/domain"
)

// readFile opens path and hands a buffered reader to decode.
func readFile(path string, decode func(io.Reader) (*domain.Image, error)) (*domain.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.CodecError{Op: "decode", Path: path, Code: domain.CodeOpen, Err: err}
	}
	defer f.Close()

	img, err := decode(bufio.NewReader(f))
	if err != nil {
		return nil, &domain.CodecError{Op: "decode", Path: path, Code: domain.CodeDecode, Err: err}
	}
	return img, nil
}

// writeFileAtomic writes to a temp file next to path and renames it over
// path once encode and close have both succeeded.
func writeFileAtomic(path string, encode func(io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &domain.CodecError{Op: "encode", Path: path, Code: domain.CodeCreate, Err: err}
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := encode(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.CodecError{Op: "encode", Path: path, Code: domain.CodeEncode, Err: err}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.CodecError{Op: "encode", Path: path, Code: domain.CodeEncode, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.CodecError{Op: "encode", Path: path, Code: domain.CodeCommit, Err: err}
	}

	// Atomic rename
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &domain.CodecError{Op: "encode", Path: path, Code: domain.CodeCommit, Err: err}
	}
	return nil
}
