// Package truetype parses TrueType font files and renders glyph
// outlines into 8-bit alpha bitmaps through the analytic rasterizer.
//
// The parser keeps sub-slices into the input data rather than decoding
// tables up front; the caller must not mutate the data while the Font
// is in use. Malformed tables never panic: lookups degrade to
// "not found" and renders to truncated outlines.
package truetype

import (
	"encoding/binary"
	"fmt"
)

// Font is a parsed TrueType font.
type Font struct {
	tables map[Tag][]byte

	head  headTable
	maxp  maxpTable
	loca  locaTable
	glyf  []byte
	hhea  hheaTable
	hmtx  hmtxTable
	name  nameTable
	cmap4 cmapFormat4
}

// Parse reads the sfnt table directory and validates the tables the
// renderer depends on. head and maxp are required; everything else is
// optional and the dependent operations report their absence.
func Parse(data []byte) (*Font, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: %d bytes is too short for an sfnt header", ErrInvalidFont, len(data))
	}
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	tables := make(map[Tag][]byte, numTables)
	for i := 0; i < numTables; i++ {
		rec := 12 + i*16
		if rec+16 > len(data) {
			return nil, fmt.Errorf("%w: table directory truncated at record %d", ErrInvalidFont, i)
		}
		tag := Tag(binary.BigEndian.Uint32(data[rec:]))
		offset := binary.BigEndian.Uint32(data[rec+8:])
		length := binary.BigEndian.Uint32(data[rec+12:])
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return nil, fmt.Errorf("%w: table %s exceeds file bounds", ErrInvalidFont, tag)
		}
		tables[tag] = data[offset : offset+length]
	}

	head, ok := tables[tagHead]
	if !ok {
		return nil, fmt.Errorf("%w: head", ErrMissingTable)
	}
	if len(head) < headMinLen {
		return nil, fmt.Errorf("%w: head table is %d bytes", ErrInvalidFont, len(head))
	}
	maxp, ok := tables[tagMaxp]
	if !ok {
		return nil, fmt.Errorf("%w: maxp", ErrMissingTable)
	}
	if len(maxp) < maxpMinLen {
		return nil, fmt.Errorf("%w: maxp table is %d bytes", ErrInvalidFont, len(maxp))
	}

	f := &Font{
		tables: tables,
		head:   headTable(head),
		maxp:   maxpTable(maxp),
		loca:   locaTable(tables[tagLoca]),
		glyf:   tables[tagGlyf],
		hhea:   hheaTable(tables[tagHhea]),
		hmtx:   hmtxTable(tables[tagHmtx]),
		name:   nameTable(tables[tagName]),
	}
	if cm, ok := tables[tagCmap]; ok {
		if idx, ok := cmapTable(cm).findFormat4(); ok {
			sub, _ := cmapTable(cm).subtable(idx)
			f.cmap4 = cmapFormat4(sub)
		}
	}
	Logger().Debug("parsed font",
		"tables", len(tables),
		"glyphs", f.NumGlyphs(),
		"unitsPerEm", f.UnitsPerEm(),
		"cmap4", f.cmap4 != nil)
	return f, nil
}

// HasTable reports whether the font carries a table with the given tag.
func (f *Font) HasTable(tag Tag) bool {
	_, ok := f.tables[tag]
	return ok
}

// NumGlyphs returns the glyph count from maxp.
func (f *Font) NumGlyphs() int {
	return int(f.maxp.numGlyphs())
}

// UnitsPerEm returns the design grid resolution from head.
func (f *Font) UnitsPerEm() uint16 {
	return f.head.unitsPerEm()
}

// GlyphIndex maps a rune to its glyph index through the character map.
// ok=false means the font maps no glyph for r; a format 4 character map
// covers the basic multilingual plane only.
func (f *Font) GlyphIndex(r rune) (uint16, bool) {
	if f.cmap4 == nil || r < 0 || r > 0xFFFF {
		return 0, false
	}
	return f.cmap4.lookup(uint16(r))
}

func (f *Font) scale(size int) float32 {
	return float32(size) / float32(f.head.unitsPerEm())
}

// VMetrics are the hhea vertical metrics scaled to pixels. Descent is
// negative for fonts that descend below the baseline.
type VMetrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// VMetrics returns the font-wide vertical metrics at the given pixel
// size. ok=false when the font has no hhea table.
func (f *Font) VMetrics(size int) (VMetrics, bool) {
	ascent, ok1 := f.hhea.ascent()
	descent, ok2 := f.hhea.descent()
	lineGap, ok3 := f.hhea.lineGap()
	if !ok1 || !ok2 || !ok3 {
		return VMetrics{}, false
	}
	scale := f.scale(size)
	return VMetrics{
		Ascent:  float32(ascent) * scale,
		Descent: float32(descent) * scale,
		LineGap: float32(lineGap) * scale,
	}, true
}

// HMetrics are one glyph's horizontal metrics scaled to pixels.
type HMetrics struct {
	AdvanceWidth    float32
	LeftSideBearing float32
}

// HMetrics returns the horizontal metrics of glyphID at the given pixel
// size. ok=false when the font has no usable hhea/hmtx pair.
func (f *Font) HMetrics(glyphID uint16, size int) (HMetrics, bool) {
	numLong, ok := f.hhea.numOfLongHorMetrics()
	if !ok {
		return HMetrics{}, false
	}
	aw, lsb, ok := f.hmtx.metrics(glyphID, numLong)
	if !ok {
		return HMetrics{}, false
	}
	scale := f.scale(size)
	return HMetrics{
		AdvanceWidth:    float32(aw) * scale,
		LeftSideBearing: float32(lsb) * scale,
	}, true
}

func (f *Font) glyph(glyphID uint16) (glyphData, bool) {
	if f.loca == nil || f.glyf == nil || glyphID >= f.maxp.numGlyphs() {
		return glyphData{}, false
	}
	format := f.head.indexToLocFormat()
	off0, ok0 := f.loca.offset(glyphID, format)
	off1, ok1 := f.loca.offset(glyphID+1, format)
	if !ok0 || !ok1 {
		return glyphData{}, false
	}
	if off0 == off1 {
		return glyphData{kind: glyphEmpty}, true
	}
	if off0 > off1 || uint64(off1) > uint64(len(f.glyf)) {
		return glyphData{}, false
	}
	data := f.glyf[off0:off1]
	if n, ok := i16At(data, 0); ok && n == -1 {
		return glyphData{kind: glyphCompound, data: data}, true
	}
	return glyphData{kind: glyphSimple, data: data}, true
}
