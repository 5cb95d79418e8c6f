package graphics

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoFrames is returned when an animation is configured with no frames.
var ErrNoFrames = errors.New("zero animation frames defined")

// FrameError reports which frame failed to load. Frame is 1-based, matching
// the number in the file name.
type FrameError struct {
	Frame int
	Path  string
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("failed to load animation frame %d (%s): %v", e.Frame, e.Path, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// FramePath returns the file path of the zero-based frame index. Files are
// numbered from 1 with no zero padding.
func FramePath(dir, pattern string, index int) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, index+1))
}

// DecodeFrames reads count frames in order. Loading stops at the first
// frame that cannot be opened or decoded.
func DecodeFrames(dir, pattern string, count int) ([]image.Image, error) {
	if count <= 0 {
		return nil, ErrNoFrames
	}
	format, err := EnsureDecoder(pattern)
	if err != nil {
		return nil, err
	}

	frames := make([]image.Image, 0, count)
	for i := 0; i < count; i++ {
		path := FramePath(dir, pattern, i)
		img, err := decodeFile(path, format)
		if err != nil {
			return nil, &FrameError{Frame: i + 1, Path: path, Err: err}
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func decodeFile(path, format string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, got, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	if got != format {
		return nil, fmt.Errorf("expected %s data, found %s", format, got)
	}
	return img, nil
}

// FrameStore is the fixed, ordered set of animation textures. It does not
// change after construction.
type FrameStore struct {
	frames        []*ebiten.Image
	width, height int
}

// NewFrameStore uploads decoded frames as textures. All frames are assumed
// to share the first frame's size; only the first is measured.
func NewFrameStore(images []image.Image) (*FrameStore, error) {
	if len(images) == 0 {
		return nil, ErrNoFrames
	}
	bounds := images[0].Bounds()
	fs := &FrameStore{
		frames: make([]*ebiten.Image, len(images)),
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	for i, img := range images {
		fs.frames[i] = ebiten.NewImageFromImage(img)
	}
	return fs, nil
}

// Len returns the number of frames.
func (fs *FrameStore) Len() int { return len(fs.frames) }

// Size returns the pixel size of the first frame.
func (fs *FrameStore) Size() (width, height int) { return fs.width, fs.height }

// Frame returns the texture at index i, or false when i is out of range.
func (fs *FrameStore) Frame(i int) (*ebiten.Image, bool) {
	if fs == nil || i < 0 || i >= len(fs.frames) {
		return nil, false
	}
	return fs.frames[i], true
}

// Dispose releases the textures. It is safe to call more than once.
func (fs *FrameStore) Dispose() {
	if fs == nil {
		return
	}
	for _, img := range fs.frames {
		img.Deallocate()
	}
	fs.frames = nil
}
