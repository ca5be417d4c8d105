// Package primeify maps image pixels through a primality rule.
//
// Every pixel's 24 color bits are read as an integer. Pixels whose value is
// not (probably) prime are either blacked out or advanced to the next prime,
// depending on the configured action. The work is split into contiguous
// ranges, one per worker, which run in parallel on the same buffer.
//
// # Quick Start
//
//	p, err := primeify.New(primeify.Config{Workers: 4, Action: primeify.ActionNextPrime})
//	if err != nil {
//	    return err
//	}
//	res, err := p.Transform(ctx, "in.png", "out.png")
//
// # Formats
//
// Files ending in .png are read and written as 8-bit RGBA PNG. Files ending
// in .rgbz use a compact zstd-compressed RGBA container. Use WithCodec to
// plug in other formats.
//
// # Pixel Layout
//
// Pixels are uint32 values read little-endian from RGBA bytes: red is the low
// byte and alpha the high byte. TransformPixels operates on that layout
// directly.
package primeify
