package graphics

import (
	"errors"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when no decoder handles a frame file type.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// decoders maps file extensions to the format names registered with the
// image package by the imports above.
var decoders = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// EnsureDecoder checks that frames named by pattern can be decoded and
// returns the image format name they will be read as.
func EnsureDecoder(pattern string) (string, error) {
	ext := strings.ToLower(filepath.Ext(pattern))
	format, ok := decoders[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}
