// Package webdemo drives the browser demo: it owns a parsed font and turns
// text into RGBA frames a canvas can display directly via putImageData.
package webdemo

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-raster/font/truetype"
	"github.com/cwbudde/algo-raster/geom"
	"github.com/cwbudde/algo-raster/raster/analytic"
	"github.com/cwbudde/algo-raster/raster/coverage"
)

const (
	minSize = 4
	maxSize = 1024
)

// ErrNoFont is returned by rendering and info calls before a font has
// been loaded.
var ErrNoFont = errors.New("webdemo: no font loaded")

// Frame is one rendered image: premultiplied RGBA pixels, row-major,
// 4 bytes per pixel, ready for a Uint8ClampedArray.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// FontInfo summarizes the loaded font for the demo's info panel.
type FontInfo struct {
	Family     string
	Style      string
	UnitsPerEm int
	NumGlyphs  int
	Kernel     string
}

// Engine renders glyph frames for the web demo.
type Engine struct {
	font *truetype.Font
}

// NewEngine creates an engine with no font loaded. RenderShape works
// immediately; Render and Info require LoadFont first.
func NewEngine() *Engine {
	return &Engine{}
}

// LoadFont parses data as a TrueType font and makes it the engine's
// current font. On error the previous font (if any) is kept.
func (e *Engine) LoadFont(data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("webdemo: %w", err)
	}
	e.font = f
	return nil
}

// Info reports the loaded font's headline numbers plus the coverage
// kernel the demo is running on.
func (e *Engine) Info() (FontInfo, error) {
	if e.font == nil {
		return FontInfo{}, ErrNoFont
	}
	info := FontInfo{
		UnitsPerEm: int(e.font.UnitsPerEm()),
		NumGlyphs:  e.font.NumGlyphs(),
		Kernel:     coverage.KernelName(),
	}
	if s, ok := e.font.Name(truetype.NameFamily); ok {
		info.Family = s
	}
	if s, ok := e.font.Name(truetype.NameSubfamily); ok {
		info.Style = s
	}
	return info, nil
}

// Render draws text at the given pixel-per-em size and returns the frame.
// The text sits on a baseline derived from the font's vertical metrics
// with a one pixel margin, black ink on a transparent background.
func (e *Engine) Render(text string, size int) (*Frame, error) {
	if e.font == nil {
		return nil, ErrNoFont
	}
	size = clampSize(size)

	face := truetype.NewFace(e.font, &truetype.FaceOptions{Size: float64(size)})
	defer face.Close()

	m := face.Metrics()
	d := font.Drawer{Face: face}
	width := d.MeasureString(text).Ceil()
	if width < 1 {
		width = 1
	}
	height := (m.Ascent + m.Descent).Ceil()
	if height < 1 {
		height = 1
	}

	img := image.NewAlpha(image.Rect(0, 0, width+2, height+2))
	d.Dst = img
	d.Src = image.NewUniform(color.Alpha{A: 255})
	d.Dot = fixed.P(1, 1+m.Ascent.Ceil())
	d.DrawString(text)

	return alphaFrame(img.Pix, width+2, height+2), nil
}

// RenderShape draws the built-in demo outline (two lines and a quad) at
// the given size. It needs no font, so the demo page has something to
// show before the user picks one.
func (e *Engine) RenderShape(size int) *Frame {
	size = clampSize(size)
	s := float32(size) / 200
	r := analytic.NewRasterizer(size, size)
	p := func(x, y float32) geom.Point { return geom.Pt(x*s, y*s) }
	r.DrawLine(p(10, 10.5), p(20, 150))
	r.DrawLine(p(20, 150), p(50, 139))
	r.DrawQuad(p(50, 139), p(100, 60), p(10, 10.5))
	return alphaFrame(r.Bitmap(), size, size)
}

// alphaFrame expands one coverage byte per pixel into premultiplied
// black RGBA.
func alphaFrame(alpha []uint8, width, height int) *Frame {
	pix := make([]uint8, len(alpha)*4)
	for i, a := range alpha {
		pix[i*4+3] = a
	}
	return &Frame{Width: width, Height: height, Pix: pix}
}

func clampSize(size int) int {
	if size < minSize {
		return minSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}
