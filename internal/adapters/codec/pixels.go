package codec

import (
	"encoding/binary"
	"image"
	"image/draw"

	"github.com/bft-labs/primeify/internal/domain"
)

// fromNRGBA packs every RGBA quadruple into a Pixel. Bytes are read
// little-endian, so red lands in the low byte and alpha in the high byte.
func fromNRGBA(src image.Image) *domain.Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
		b = nrgba.Bounds()
	}

	img := domain.NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
		getPixels(img.Pixels[y*img.Width:(y+1)*img.Width], row)
	}
	return img
}

// toNRGBA is the inverse of fromNRGBA.
func toNRGBA(img *domain.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	putPixels(out.Pix, img.Pixels)
	return out
}

// putPixels writes pixels into dst as RGBA bytes. dst must hold 4*len(pixels) bytes.
func putPixels(dst []byte, pixels []domain.Pixel) {
	for i, p := range pixels {
		binary.LittleEndian.PutUint32(dst[4*i:], uint32(p))
	}
}

// getPixels reads RGBA bytes from src into pixels.
func getPixels(pixels []domain.Pixel, src []byte) {
	for i := range pixels {
		pixels[i] = domain.Pixel(binary.LittleEndian.Uint32(src[4*i:]))
	}
}
