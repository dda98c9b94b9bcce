package truetype

import "github.com/cwbudde/algo-raster/geom"

type glyphKind uint8

const (
	glyphEmpty glyphKind = iota
	glyphSimple
	glyphCompound
)

// glyphData is one entry of the glyf table. Empty glyphs (zero-length
// loca ranges) carry no bytes.
type glyphData struct {
	kind glyphKind
	data []byte
}

func (g glyphData) bbox() (xmin, ymin, xmax, ymax int16, ok bool) {
	var o1, o2, o3, o4 bool
	xmin, o1 = i16At(g.data, 2)
	ymin, o2 = i16At(g.data, 4)
	xmax, o3 = i16At(g.data, 6)
	ymax, o4 = i16At(g.data, 8)
	return xmin, ymin, xmax, ymax, o1 && o2 && o3 && o4
}

// glyphPoints streams the points of a simple glyph. Flags, x deltas and
// y deltas live in three consecutive runs; the constructor walks the
// flag run once to find where the coordinate runs start.
type glyphPoints struct {
	data []byte

	x, y             int16
	pointsRemaining  int
	lastFlag         byte
	repeatsRemaining byte
	flagsIx          int
	xIx              int
	yIx              int
	bad              bool
}

func newGlyphPoints(data []byte) (*glyphPoints, bool) {
	nContours, ok := i16At(data, 0)
	if !ok || nContours < 0 {
		return nil, false
	}
	insnLenIx := 10 + 2*int(nContours)
	lastEnd, ok := u16At(data, insnLenIx-2)
	if !ok {
		return nil, false
	}
	nPoints := int(lastEnd) + 1
	insnLen, ok := u16At(data, insnLenIx)
	if !ok {
		return nil, false
	}
	flagsIx := insnLenIx + 2 + int(insnLen)

	flagsSize, xSize := 0, 0
	for remaining := nPoints; remaining > 0; {
		if flagsIx+flagsSize >= len(data) {
			return nil, false
		}
		flag := data[flagsIx+flagsSize]
		repeatCount := 1
		if flag&8 != 0 {
			flagsSize++
			if flagsIx+flagsSize >= len(data) {
				return nil, false
			}
			repeatCount = int(data[flagsIx+flagsSize]) + 1
		}
		flagsSize++
		switch flag & 0x12 {
		case 0x02, 0x12:
			xSize += repeatCount
		case 0x00:
			xSize += 2 * repeatCount
		}
		remaining -= repeatCount
	}
	xIx := flagsIx + flagsSize
	return &glyphPoints{
		data:            data,
		pointsRemaining: nPoints,
		flagsIx:         flagsIx,
		xIx:             xIx,
		yIx:             xIx + xSize,
	}, true
}

func (g *glyphPoints) u8(ix int) byte {
	if ix < 0 || ix >= len(g.data) {
		g.bad = true
		return 0
	}
	return g.data[ix]
}

func (g *glyphPoints) i16(ix int) int16 {
	v, ok := i16At(g.data, ix)
	if !ok {
		g.bad = true
	}
	return v
}

func (g *glyphPoints) next() (onCurve bool, x, y int16, ok bool) {
	if g.bad || g.pointsRemaining == 0 {
		return false, 0, 0, false
	}
	if g.repeatsRemaining == 0 {
		flag := g.u8(g.flagsIx)
		if flag&8 != 0 {
			g.repeatsRemaining = g.u8(g.flagsIx + 1)
			g.flagsIx += 2
		} else {
			g.flagsIx++
		}
		g.lastFlag = flag
	} else {
		g.repeatsRemaining--
	}
	flag := g.lastFlag
	switch flag & 0x12 {
	case 0x02:
		g.x -= int16(g.u8(g.xIx))
		g.xIx++
	case 0x12:
		g.x += int16(g.u8(g.xIx))
		g.xIx++
	case 0x00:
		g.x += g.i16(g.xIx)
		g.xIx += 2
	}
	switch flag & 0x24 {
	case 0x04:
		g.y -= int16(g.u8(g.yIx))
		g.yIx++
	case 0x24:
		g.y += int16(g.u8(g.yIx))
		g.yIx++
	case 0x00:
		g.y += g.i16(g.yIx)
		g.yIx += 2
	}
	if g.bad {
		return false, 0, 0, false
	}
	g.pointsRemaining--
	return flag&1 != 0, g.x, g.y, true
}

// contourSizes yields the point count of each contour from the
// cumulative endPtsOfContours array.
type contourSizes struct {
	data              []byte
	contoursRemaining int
	ix                int
	offset            int32
	bad               bool
}

func newContourSizes(data []byte) (*contourSizes, bool) {
	n, ok := i16At(data, 0)
	if !ok || n < 0 {
		return nil, false
	}
	return &contourSizes{data: data, contoursRemaining: int(n), ix: 10, offset: -1}, true
}

func (c *contourSizes) next() (int, bool) {
	if c.bad || c.contoursRemaining == 0 {
		return 0, false
	}
	end, ok := u16At(c.data, c.ix)
	if !ok {
		c.bad = true
		return 0, false
	}
	size := int32(end) - c.offset
	if size <= 0 {
		// End points must be strictly increasing.
		c.bad = true
		return 0, false
	}
	c.offset = int32(end)
	c.ix += 2
	c.contoursRemaining--
	return int(size), true
}

// Compound glyph component flags.
const (
	flagArg1And2AreWords   uint16 = 1 << 0
	flagWeHaveAScale       uint16 = 1 << 3
	flagMoreComponents     uint16 = 1 << 5
	flagWeHaveAnXAndYScale uint16 = 1 << 6
	flagWeHaveATwoByTwo    uint16 = 1 << 7
)

// components streams the (glyph index, transform) pairs of a compound
// glyph. Truncated component records end the stream.
type components struct {
	data []byte
	ix   int
	more bool
	bad  bool
}

func newComponents(data []byte) *components {
	return &components{data: data, ix: 10, more: true}
}

func (c *components) u16() uint16 {
	v, ok := u16At(c.data, c.ix)
	if !ok {
		c.bad = true
	}
	c.ix += 2
	return v
}

func (c *components) i16() int16 {
	return int16(c.u16())
}

func (c *components) f2dot14() float32 {
	v, ok := f2dot14At(c.data, c.ix)
	if !ok {
		c.bad = true
	}
	c.ix += 2
	return v
}

func (c *components) next() (uint16, geom.Affine, bool) {
	if c.bad || !c.more {
		return 0, geom.Affine{}, false
	}
	flags := c.u16()
	glyphIndex := c.u16()
	var arg1, arg2 int16
	if flags&flagArg1And2AreWords != 0 {
		arg1 = c.i16()
		arg2 = c.i16()
	} else {
		arg1 = int16(int8(c.u8()))
		arg2 = int16(int8(c.u8()))
	}
	a, b, cc, d := float32(1), float32(0), float32(0), float32(1)
	switch {
	case flags&flagWeHaveATwoByTwo != 0:
		a = c.f2dot14()
		b = c.f2dot14()
		cc = c.f2dot14()
		d = c.f2dot14()
	case flags&flagWeHaveAnXAndYScale != 0:
		a = c.f2dot14()
		d = c.f2dot14()
	case flags&flagWeHaveAScale != 0:
		a = c.f2dot14()
		d = a
	}
	if c.bad {
		return 0, geom.Affine{}, false
	}
	c.more = flags&flagMoreComponents != 0
	z := geom.Affine{A: a, B: b, C: cc, D: d, E: float32(arg1), F: float32(arg2)}
	return glyphIndex, z, true
}

func (c *components) u8() byte {
	if c.ix >= len(c.data) {
		c.bad = true
		return 0
	}
	v := c.data[c.ix]
	c.ix++
	return v
}
