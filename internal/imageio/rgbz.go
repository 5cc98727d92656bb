package imageio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/gopaint/aquarelle"
)

// rgbz is a minimal lossless interchange format for pipeline buffers: a
// 12-byte header (magic, width, height, big-endian) followed by the raw
// RGBA bytes compressed with zstd. It round-trips pixmaps exactly, without
// the precision loss or re-encoding cost of the picture formats.

// rgbzMagic identifies an rgbz stream.
var rgbzMagic = [4]byte{'R', 'G', 'B', 'Z'}

// maxRGBZDim bounds decoded dimensions so a corrupt header cannot trigger
// a huge allocation.
const maxRGBZDim = 1 << 16

// EncodeRGBZ writes the pixmap to w in rgbz format.
func EncodeRGBZ(w io.Writer, pm *aquarelle.Pixmap) error {
	var header [12]byte
	copy(header[0:4], rgbzMagic[:])
	binary.BigEndian.PutUint32(header[4:8], uint32(pm.Width()))
	binary.BigEndian.PutUint32(header[8:12], uint32(pm.Height()))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("imageio: rgbz header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("imageio: rgbz encoder: %w", err)
	}
	if _, err := enc.Write(pm.Data()); err != nil {
		_ = enc.Close()
		return fmt.Errorf("imageio: rgbz payload: %w", err)
	}
	return enc.Close()
}

// DecodeRGBZ reads an rgbz stream into a pixmap.
func DecodeRGBZ(r io.Reader) (*aquarelle.Pixmap, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("imageio: rgbz header: %w", err)
	}
	if [4]byte(header[0:4]) != rgbzMagic {
		return nil, fmt.Errorf("%w: bad rgbz magic", ErrUnsupportedFormat)
	}
	width := int(binary.BigEndian.Uint32(header[4:8]))
	height := int(binary.BigEndian.Uint32(header[8:12]))
	if width <= 0 || height <= 0 || width > maxRGBZDim || height > maxRGBZDim {
		return nil, fmt.Errorf("imageio: rgbz dimensions out of range: %dx%d", width, height)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: rgbz decoder: %w", err)
	}
	defer dec.Close()

	pm := aquarelle.NewPixmap(width, height)
	if _, err := io.ReadFull(dec, pm.Data()); err != nil {
		return nil, fmt.Errorf("imageio: rgbz payload: %w", err)
	}
	return pm, nil
}
