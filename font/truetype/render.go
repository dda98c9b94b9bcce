package truetype

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-raster/geom"
	"github.com/cwbudde/algo-raster/raster/analytic"
)

// Component references may nest (a glyph built from glyphs built from
// glyphs). Eight levels is far beyond real fonts and bounds recursion
// on crafted files with reference cycles.
const maxComponentDepth = 8

// pixelBox is the integer pixel rectangle a glyph renders into,
// relative to the glyph origin on the baseline.
type pixelBox struct {
	l, t, r, b int
}

func (m pixelBox) width() int  { return m.r - m.l }
func (m pixelBox) height() int { return m.b - m.t }

// pixelBoxAndTransform maps the font-unit bounding box to pixels and
// builds the transform from font units into that box. The y axis
// flips: TrueType y grows upward, raster rows grow downward.
func (f *Font) pixelBoxAndTransform(xmin, ymin, xmax, ymax int16, size int) (pixelBox, geom.Affine) {
	scale := f.scale(size)
	m := pixelBox{
		l: int(math.Floor(float64(float32(xmin) * scale))),
		t: int(math.Floor(float64(float32(ymax) * -scale))),
		r: int(math.Ceil(float64(float32(xmax) * scale))),
		b: int(math.Ceil(float64(float32(ymin) * -scale))),
	}
	z := geom.Affine{A: scale, D: -scale, E: -float32(m.l), F: -float32(m.t)}
	return m, z
}

// GlyphBitmap is a rendered glyph: an 8-bit alpha image plus its
// placement relative to the glyph origin on the baseline. Left and Top
// position the bitmap's top-left corner; Top is negative for glyphs
// that rise above the baseline.
type GlyphBitmap struct {
	Width  int
	Height int
	Left   int
	Top    int
	Data   []uint8
}

// RenderGlyph rasterizes glyph glyphID at the given pixel-per-em size.
// Glyphs with no outline (spaces) yield a zero-size bitmap and no
// error.
func (f *Font) RenderGlyph(glyphID uint16, size int) (*GlyphBitmap, error) {
	return f.renderGlyphReusing(nil, glyphID, size)
}

// renderGlyphReusing renders into r when non-nil, resetting it to the
// glyph's dimensions, so callers rendering many glyphs can reuse one
// coverage buffer.
func (f *Font) renderGlyphReusing(r *analytic.Rasterizer, glyphID uint16, size int) (*GlyphBitmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	g, ok := f.glyph(glyphID)
	if !ok {
		return nil, fmt.Errorf("%w: glyph %d", ErrGlyphNotFound, glyphID)
	}
	if g.kind == glyphEmpty {
		return &GlyphBitmap{}, nil
	}
	xmin, ymin, xmax, ymax, ok := g.bbox()
	if !ok {
		return nil, fmt.Errorf("%w: glyph %d header truncated", ErrGlyphNotFound, glyphID)
	}
	box, z := f.pixelBoxAndTransform(xmin, ymin, xmax, ymax, size)
	if r == nil {
		r = analytic.NewRasterizer(box.width(), box.height())
	} else {
		r.Reset(box.width(), box.height())
	}
	f.drawGlyph(r, z, g, glyphID, 0)
	Logger().Debug("rendered glyph",
		"glyph", glyphID,
		"size", size,
		"width", box.width(),
		"height", box.height())
	return &GlyphBitmap{
		Width:  box.width(),
		Height: box.height(),
		Left:   box.l,
		Top:    box.t,
		Data:   r.Bitmap(),
	}, nil
}

func (f *Font) drawGlyph(r *analytic.Rasterizer, z geom.Affine, g glyphData, glyphID uint16, depth int) {
	switch g.kind {
	case glyphSimple:
		pts, ok := newGlyphPoints(g.data)
		if !ok {
			Logger().Warn("truncated simple glyph", "glyph", glyphID)
			return
		}
		sizes, ok := newContourSizes(g.data)
		if !ok {
			return
		}
		for {
			n, ok := sizes.next()
			if !ok {
				return
			}
			drawPath(r, z, newPathBuilder(pts, n))
		}
	case glyphCompound:
		if depth >= maxComponentDepth {
			Logger().Warn("component nesting too deep", "glyph", glyphID, "depth", depth)
			return
		}
		comps := newComponents(g.data)
		for {
			componentID, zc, ok := comps.next()
			if !ok {
				return
			}
			cg, ok := f.glyph(componentID)
			if !ok {
				Logger().Warn("dangling component reference",
					"glyph", glyphID,
					"component", componentID)
				continue
			}
			f.drawGlyph(r, geom.Concat(z, zc), cg, componentID, depth+1)
		}
	}
}

func drawPath(r *analytic.Rasterizer, z geom.Affine, path *pathBuilder) {
	var last geom.Point
	for {
		op, ok := path.next()
		if !ok {
			return
		}
		switch op.kind {
		case opMoveTo:
			last = op.p
		case opLineTo:
			r.DrawLine(z.Apply(last), z.Apply(op.p))
			last = op.p
		case opQuadTo:
			r.DrawQuad(z.Apply(last), z.Apply(op.ctrl), z.Apply(op.p))
			last = op.p
		}
	}
}
