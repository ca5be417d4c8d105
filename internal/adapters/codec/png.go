package codec

import (
	"image/png"
	"io"

	"github.com/bft-labs/primeify/internal/domain"
)

type pngFormat struct {
	encoder png.Encoder
}

func newPNGFormat() *pngFormat {
	return &pngFormat{encoder: png.Encoder{CompressionLevel: png.DefaultCompression}}
}

func (f *pngFormat) decode(r io.Reader) (*domain.Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromNRGBA(src), nil
}

func (f *pngFormat) encode(w io.Writer, img *domain.Image) error {
	return f.encoder.Encode(w, toNRGBA(img))
}
