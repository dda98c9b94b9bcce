package truetype

import "encoding/binary"

// TrueType data is big-endian throughout. The readers below bound-check
// every access; table accessors return ok=false instead of panicking on
// truncated data.

func u16At(b []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(b) {
		return 0, false
	}
	return binary.BigEndian.Uint16(b[off:]), true
}

func i16At(b []byte, off int) (int16, bool) {
	v, ok := u16At(b, off)
	return int16(v), ok
}

func u32At(b []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return binary.BigEndian.Uint32(b[off:]), true
}

// f2dot14At reads a signed 2.14 fixed-point value.
func f2dot14At(b []byte, off int) (float32, bool) {
	v, ok := i16At(b, off)
	return float32(v) * (1.0 / 16384), ok
}

// Tag is a four-byte table identifier ("head", "glyf", ...).
type Tag uint32

// MakeTag builds a Tag from the first four bytes of s.
func MakeTag(s string) Tag {
	return Tag(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]))
}

func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24),
		byte(t >> 16),
		byte(t >> 8),
		byte(t),
	})
}

var (
	tagHead = MakeTag("head")
	tagMaxp = MakeTag("maxp")
	tagLoca = MakeTag("loca")
	tagGlyf = MakeTag("glyf")
	tagCmap = MakeTag("cmap")
	tagHhea = MakeTag("hhea")
	tagHmtx = MakeTag("hmtx")
	tagName = MakeTag("name")
)

// head. Fixed fields are length-verified at parse time, so the accessors
// read directly.
type headTable []byte

const headMinLen = 52

func (h headTable) unitsPerEm() uint16 {
	return binary.BigEndian.Uint16(h[18:])
}

func (h headTable) indexToLocFormat() int16 {
	return int16(binary.BigEndian.Uint16(h[50:]))
}

// maxp.
type maxpTable []byte

const maxpMinLen = 6

func (m maxpTable) numGlyphs() uint16 {
	return binary.BigEndian.Uint16(m[4:])
}

// loca maps a glyph index to its offset into glyf. Short format stores
// half-offsets.
type locaTable []byte

func (l locaTable) offset(ix uint16, format int16) (uint32, bool) {
	if format != 0 {
		return u32At(l, int(ix)*4)
	}
	v, ok := u16At(l, int(ix)*2)
	return uint32(v) * 2, ok
}

// hhea.
type hheaTable []byte

func (h hheaTable) ascent() (int16, bool)  { return i16At(h, 4) }
func (h hheaTable) descent() (int16, bool) { return i16At(h, 6) }
func (h hheaTable) lineGap() (int16, bool) { return i16At(h, 8) }

func (h hheaTable) numOfLongHorMetrics() (uint16, bool) { return u16At(h, 34) }

// hmtx: numLong long entries (advance, lsb), then a bare lsb run that
// reuses the last advance.
type hmtxTable []byte

func (h hmtxTable) metrics(glyphID, numLong uint16) (uint16, int16, bool) {
	if numLong == 0 {
		return 0, 0, false
	}
	if glyphID < numLong {
		aw, ok1 := u16At(h, 4*int(glyphID))
		lsb, ok2 := i16At(h, 4*int(glyphID)+2)
		return aw, lsb, ok1 && ok2
	}
	aw, ok1 := u16At(h, 4*(int(numLong)-1))
	lsb, ok2 := i16At(h, 4*int(numLong)+2*(int(glyphID)-int(numLong)))
	return aw, lsb, ok1 && ok2
}

// cmap header: version, record count, then 8-byte encoding records.
type cmapTable []byte

func (c cmapTable) numTables() (uint16, bool) { return u16At(c, 2) }

type encodingRecord []byte

func (e encodingRecord) platformID() uint16 { return binary.BigEndian.Uint16(e) }
func (e encodingRecord) encodingID() uint16 { return binary.BigEndian.Uint16(e[2:]) }

func (e encodingRecord) subtableOffset() uint32 { return binary.BigEndian.Uint32(e[4:]) }

func (c cmapTable) record(i uint16) (encodingRecord, bool) {
	n, ok := c.numTables()
	if !ok || i >= n {
		return nil, false
	}
	off := 4 + int(i)*8
	if off+8 > len(c) {
		return nil, false
	}
	return encodingRecord(c[off : off+8]), true
}

// subtable returns the length-delimited encoding subtable of record i.
// Only u16-length formats qualify; anything else fails the minimum
// length check and is skipped by the caller.
func (c cmapTable) subtable(i uint16) ([]byte, bool) {
	rec, ok := c.record(i)
	if !ok {
		return nil, false
	}
	off := int(rec.subtableOffset())
	length, ok := u16At(c, off+2)
	if !ok || length < 6 || off+int(length) > len(c) {
		return nil, false
	}
	return c[off : off+int(length)], true
}

// findFormat4 returns the index of the first format 4 encoding record.
func (c cmapTable) findFormat4() (uint16, bool) {
	n, ok := c.numTables()
	if !ok {
		return 0, false
	}
	for i := uint16(0); i < n; i++ {
		sub, ok := c.subtable(i)
		if !ok {
			continue
		}
		if format, ok := u16At(sub, 0); ok && format == 4 {
			return i, true
		}
	}
	return 0, false
}

// cmapFormat4 is a segment-mapped character table. Position arithmetic
// inside a segment is uint16 and wraps, as the format itself specifies.
type cmapFormat4 []byte

const endCodesOffset = 14

func (c cmapFormat4) segCount() uint16 {
	v, _ := u16At(c, 6)
	return v / 2
}

func startCodesOffset(segCount uint16) int {
	return endCodesOffset + 2 + 2*int(segCount)
}

func idDeltasOffset(segCount uint16) int {
	return startCodesOffset(segCount) + 2*int(segCount)
}

func idRangeOffsetsOffset(segCount uint16) int {
	return idDeltasOffset(segCount) + 2*int(segCount)
}

// lookup binary-searches the segments for code and resolves the glyph
// index. ok=false means the character is not mapped.
func (c cmapFormat4) lookup(code uint16) (uint16, bool) {
	segCount := c.segCount()
	start, end := uint16(0), segCount
	for end > start {
		// Overflow-safe: segCount < 0x8000.
		index := (start + end) / 2
		endValue, ok := u16At(c, endCodesOffset+2*int(index))
		if !ok {
			return 0, false
		}
		if endValue >= code {
			startValue, ok := u16At(c, startCodesOffset(segCount)+2*int(index))
			if !ok {
				return 0, false
			}
			if startValue > code {
				end = index
			} else {
				return c.glyphFromSegment(code, startValue, segCount, index)
			}
		} else {
			start = index + 1
		}
	}
	return 0, false
}

func (c cmapFormat4) glyphFromSegment(code, startValue, segCount, index uint16) (uint16, bool) {
	rangeOffsetPos := idRangeOffsetsOffset(segCount) + 2*int(index)
	rangeOffset, ok := u16At(c, rangeOffsetPos)
	if !ok {
		return 0, false
	}
	idDelta, ok := i16At(c, idDeltasOffset(segCount)+2*int(index))
	if !ok {
		return 0, false
	}
	if rangeOffset == 0 {
		return code + uint16(idDelta), true
	}
	pos := uint16(rangeOffsetPos) + (code-startValue)*2 + rangeOffset
	glyphArrayValue, ok := u16At(c, int(pos))
	if !ok || glyphArrayValue == 0 {
		return 0, false
	}
	return glyphArrayValue + uint16(idDelta), true
}
