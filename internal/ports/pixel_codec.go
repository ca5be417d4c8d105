package ports

import "github.com/bft-labs/primeify/internal/domain"

// PixelCodec reads and writes whole images as flat RGBA pixel buffers.
// Failures are reported as *domain.CodecError.
type PixelCodec interface {
	// Decode reads the image at path fully into memory.
	Decode(path string) (*domain.Image, error)

	// Encode writes img to path. A failed Encode leaves no file at path.
	Encode(path string, img *domain.Image) error

	// CanEncode reports, without touching the filesystem, whether Encode
	// knows the format of path.
	CanEncode(path string) error
}
