package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/bft-labs/primeify/internal/domain"
)

const (
	rgbzMagic      = "RGBZ"
	rgbzHeaderSize = 12

	// maxRGBZPixels bounds the buffer allocated for a header we have not
	// verified yet (1<<28 pixels is a 1 GiB RGBA buffer).
	maxRGBZPixels = 1 << 28
)

var (
	errBadMagic    = errors.New("not an rgbz file")
	errTooLarge    = errors.New("rgbz dimensions too large")
	errShortPixels = errors.New("rgbz payload does not match dimensions")
)

type rgbzFormat struct{}

func (rgbzFormat) decode(r io.Reader) (*domain.Image, error) {
	var hdr [rgbzHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !bytes.Equal(hdr[:4], []byte(rgbzMagic)) {
		return nil, errBadMagic
	}
	width := int(binary.LittleEndian.Uint32(hdr[4:8]))
	height := int(binary.LittleEndian.Uint32(hdr[8:12]))
	if uint64(width)*uint64(height) > maxRGBZPixels {
		return nil, errTooLarge
	}
	size := 4 * width * height

	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
		zstd.WithDecoderMaxMemory(4*maxRGBZPixels),
	)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	raw, err := dec.DecodeAll(payload, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	if len(raw) != size {
		return nil, errShortPixels
	}

	img := domain.NewImage(width, height)
	getPixels(img.Pixels, raw)
	return img, nil
}

func (rgbzFormat) encode(w io.Writer, img *domain.Image) error {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return err
	}
	defer enc.Close()

	raw := make([]byte, 4*img.Len())
	putPixels(raw, img.Pixels)

	var hdr [rgbzHeaderSize]byte
	copy(hdr[:4], rgbzMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(img.Width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(img.Height))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(enc.EncodeAll(raw, nil))
	return err
}
