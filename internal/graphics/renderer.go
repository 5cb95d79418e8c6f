package graphics

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws animation frames into the window's back buffer.
type Renderer struct {
	frames     *FrameStore
	background color.Color
	scale      int
	face       *text.GoXFace
}

// NewRenderer creates a renderer for frames drawn at scale times their
// source size over the given background.
func NewRenderer(frames *FrameStore, background color.Color, scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{
		frames:     frames,
		background: background,
		scale:      scale,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
}

// SpriteSize is the on-screen size of one frame.
func (r *Renderer) SpriteSize() (width, height int) {
	w, h := r.frames.Size()
	return w * r.scale, h * r.scale
}

// Clear fills the whole screen with the background colour.
func (r *Renderer) Clear(screen *ebiten.Image) {
	screen.Fill(r.background)
}

// DrawFrame copies the whole of frame index to a sprite-sized rectangle
// whose top-left corner is (x, y). Unknown frames draw nothing.
func (r *Renderer) DrawFrame(screen *ebiten.Image, index, x, y int) {
	img, ok := r.frames.Frame(index)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.scale), float64(r.scale))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// DrawOverlay prints diagnostic lines in the top-left corner.
func (r *Renderer) DrawOverlay(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = float64(basicfont.Face7x13.Height + 2)
	text.Draw(screen, strings.Join(lines, "\n"), r.face, op)
}

// Dispose releases the frame textures.
func (r *Renderer) Dispose() {
	r.frames.Dispose()
}
