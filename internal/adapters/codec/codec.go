package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bft-labs/primeify/internal/domain"
	"github.com/bft-labs/primeify/internal/ports"
)

// format encodes and decodes one on-disk representation.
type format interface {
	decode(r io.Reader) (*domain.Image, error)
	encode(w io.Writer, img *domain.Image) error
}

// Codec selects a format by file extension.
type Codec struct {
	formats map[string]format
}

// New returns a Codec that understands .png and .rgbz files.
func New() *Codec {
	return &Codec{
		formats: map[string]format{
			".png":  newPNGFormat(),
			".rgbz": rgbzFormat{},
		},
	}
}

// Extensions returns the file extensions the codec understands.
func (c *Codec) Extensions() []string {
	exts := make([]string, 0, len(c.formats))
	for ext := range c.formats {
		exts = append(exts, ext)
	}
	return exts
}

// Decode reads the image at path.
func (c *Codec) Decode(path string) (*domain.Image, error) {
	f, err := c.lookup("decode", path)
	if err != nil {
		return nil, err
	}
	return readFile(path, f.decode)
}

// Encode writes img to path, replacing any existing file only on success.
func (c *Codec) Encode(path string, img *domain.Image) error {
	if img.Len() != img.Width*img.Height {
		return &domain.CodecError{
			Op:   "encode",
			Path: path,
			Code: domain.CodeEncode,
			Err:  fmt.Errorf("buffer holds %d pixels, want %dx%d", img.Len(), img.Width, img.Height),
		}
	}
	f, err := c.lookup("encode", path)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		return f.encode(w, img)
	})
}

// CanEncode returns the error Encode would report for an unsupported
// output format, or nil.
func (c *Codec) CanEncode(path string) error {
	_, err := c.lookup("encode", path)
	return err
}

func (c *Codec) lookup(op, path string) (format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := c.formats[ext]
	if !ok {
		return nil, &domain.CodecError{
			Op:   op,
			Path: path,
			Code: domain.CodeUnknownFormat,
			Err:  fmt.Errorf("unsupported image format %q", ext),
		}
	}
	return f, nil
}

var _ ports.PixelCodec = (*Codec)(nil)
