// Package codec implements ports.PixelCodec for the image formats primeify
// reads and writes.
//
// The format is chosen from the file extension:
//
//   - .png: 8-bit RGBA PNG via image/png. Non-NRGBA sources are converted on decode.
//   - .rgbz: a "RGBZ" magic, little-endian uint32 width and height, then the
//     zstd-compressed RGBA bytes in row-major order.
//
// Encodes go to a temporary file in the destination directory that is renamed
// into place only after the whole image has been written.
package codec
