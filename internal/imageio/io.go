// Package imageio adapts image files to and from pixmaps. It sits outside
// the processing core: decoding and encoding are plain I/O around Process.
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP (decode only), and the
// rgbz raw-raster format (see rgbz.go).
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode registration

	"github.com/gopaint/aquarelle"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// jpegQuality is the encoding quality used for JPEG output.
const jpegQuality = 92

// Load reads an image from the given file path into a pixmap, auto-detecting
// the format from the extension and falling back to content sniffing.
func Load(path string) (*aquarelle.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".rgbz") {
		return DecodeRGBZ(f)
	}
	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*aquarelle.Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	pm := aquarelle.FromImage(img)
	aquarelle.Logger().Debug("image decoded",
		"format", format, "width", pm.Width(), "height", pm.Height())
	return pm, nil
}

// Save writes the pixmap to the given file path, choosing the encoder from
// the extension. Supported: .png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff, .rgbz.
func Save(path string, pm *aquarelle.Pixmap) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Encode(f, pm, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")); err != nil {
		return err
	}
	return f.Sync()
}

// Encode writes the pixmap to w in the named format ("png", "jpeg", ...).
func Encode(w io.Writer, pm *aquarelle.Pixmap, format string) error {
	switch format {
	case "png":
		return png.Encode(w, pm.ToImage())
	case "jpg", "jpeg":
		return jpeg.Encode(w, pm.ToImage(), &jpeg.Options{Quality: jpegQuality})
	case "gif":
		return gif.Encode(w, pm.ToImage(), nil)
	case "bmp":
		return bmp.Encode(w, pm.ToImage())
	case "tif", "tiff":
		return tiff.Encode(w, pm.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	case "rgbz":
		return EncodeRGBZ(w, pm)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
