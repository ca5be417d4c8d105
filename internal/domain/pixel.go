package domain

// Pixel is a packed RGBA pixel. The three color channels occupy the low 24
// bits and the alpha channel the high byte.
type Pixel uint32

const (
	// ColorBits is the width of the color portion of a Pixel.
	ColorBits = 24

	// ColorMask selects the color channels of a Pixel.
	ColorMask Pixel = 0x00FFFFFF

	// AlphaMask selects the alpha channel of a Pixel.
	AlphaMask Pixel = 0xFF000000

	// OpaqueBlack is a fully opaque pixel with all color channels zero.
	OpaqueBlack Pixel = AlphaMask

	// Saturated is the maximum representable pixel value.
	Saturated Pixel = 0xFFFFFFFF
)

// Color returns the pixel with its alpha channel cleared.
func (p Pixel) Color() uint32 {
	return uint32(p & ColorMask)
}

// Alpha returns the alpha channel.
func (p Pixel) Alpha() uint8 {
	return uint8(p >> ColorBits)
}

// Image is a decoded image: a row-major pixel buffer and its dimensions.
// len(Pixels) is always Width*Height.
type Image struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewImage allocates an image with all pixels zero.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

// Len returns the number of pixels in the image.
func (img *Image) Len() int {
	return len(img.Pixels)
}
