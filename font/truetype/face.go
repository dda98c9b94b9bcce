package truetype

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-raster/raster/analytic"
)

// FaceOptions configures NewFace. The zero value of a field selects its
// default.
type FaceOptions struct {
	// Size is the type size in points. Default 12.
	Size float64
	// DPI is the resolution in dots per inch. Default 72.
	DPI float64
}

// NewFace returns a font.Face backed by f. The Face reuses a single
// coverage buffer across Glyph calls and is not safe for concurrent
// use; wrap it in a mutex or create one per goroutine.
func NewFace(f *Font, opts *FaceOptions) font.Face {
	size, dpi := 12.0, 72.0
	if opts != nil {
		if opts.Size > 0 {
			size = opts.Size
		}
		if opts.DPI > 0 {
			dpi = opts.DPI
		}
	}
	pixels := int(math.Round(size * dpi / 72))
	if pixels < 1 {
		pixels = 1
	}
	return &face{
		font:   f,
		pixels: pixels,
		rast:   analytic.NewRasterizer(0, 0),
	}
}

type face struct {
	font   *Font
	pixels int
	rast   *analytic.Rasterizer
}

func (a *face) Close() error { return nil }

func (a *face) Metrics() font.Metrics {
	vm, ok := a.font.VMetrics(a.pixels)
	if !ok {
		return font.Metrics{}
	}
	ascent := fixFromFloat(vm.Ascent)
	descent := fixFromFloat(-vm.Descent)
	return font.Metrics{
		Height:     ascent + descent + fixFromFloat(vm.LineGap),
		Ascent:     ascent,
		Descent:    descent,
		CaretSlope: image.Pt(0, 1),
	}
}

func (a *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (a *face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	gid, ok := a.font.GlyphIndex(r)
	if !ok {
		return 0, false
	}
	return a.glyphAdvance(gid)
}

func (a *face) glyphAdvance(gid uint16) (fixed.Int26_6, bool) {
	hm, ok := a.font.HMetrics(gid, a.pixels)
	if !ok {
		return 0, false
	}
	return fixFromFloat(hm.AdvanceWidth), true
}

func (a *face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	gid, ok := a.font.GlyphIndex(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	advance, ok := a.glyphAdvance(gid)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	g, ok := a.font.glyph(gid)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	if g.kind == glyphEmpty {
		return fixed.Rectangle26_6{}, advance, true
	}
	xmin, ymin, xmax, ymax, ok := g.bbox()
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	scale := a.font.scale(a.pixels)
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{
			X: fixFromFloat(float32(xmin) * scale),
			Y: fixFromFloat(float32(ymax) * -scale),
		},
		Max: fixed.Point26_6{
			X: fixFromFloat(float32(xmax) * scale),
			Y: fixFromFloat(float32(ymin) * -scale),
		},
	}
	return bounds, advance, true
}

func (a *face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	gid, ok := a.font.GlyphIndex(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	advance, ok := a.glyphAdvance(gid)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	bm, err := a.font.renderGlyphReusing(a.rast, gid, a.pixels)
	if err != nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor() + bm.Left
	y := dot.Y.Floor() + bm.Top
	dr := image.Rect(x, y, x+bm.Width, y+bm.Height)
	mask := &image.Alpha{
		Pix:    bm.Data,
		Stride: bm.Width,
		Rect:   image.Rect(0, 0, bm.Width, bm.Height),
	}
	return dr, mask, image.Point{}, advance, true
}

func fixFromFloat(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}
