package truetype

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// NameID selects an entry of the naming table.
type NameID uint16

const (
	NameCopyright  NameID = 0
	NameFamily     NameID = 1
	NameSubfamily  NameID = 2
	NameUniqueID   NameID = 3
	NameFull       NameID = 4
	NameVersion    NameID = 5
	NamePostScript NameID = 6
)

type nameTable []byte

// Name returns the font's naming table entry for id, preferring Windows
// Unicode records, then Unicode-platform records, then Mac Roman.
// ok=false when the font carries no decodable record for id.
func (f *Font) Name(id NameID) (string, bool) {
	if f.name == nil {
		return "", false
	}
	count, ok1 := u16At(f.name, 2)
	stringOffset, ok2 := u16At(f.name, 4)
	if !ok1 || !ok2 {
		return "", false
	}

	var best []byte
	var bestDecode func([]byte) (string, error)
	bestScore := 0
	for i := 0; i < int(count); i++ {
		rec := 6 + 12*i
		platformID, ok := u16At(f.name, rec)
		if !ok {
			break
		}
		nameID, _ := u16At(f.name, rec+6)
		if NameID(nameID) != id {
			continue
		}
		length, _ := u16At(f.name, rec+8)
		offset, _ := u16At(f.name, rec+10)
		start := int(stringOffset) + int(offset)
		if start+int(length) > len(f.name) {
			continue
		}
		score, decode := nameDecoder(platformID)
		if score > bestScore {
			best = f.name[start : start+int(length)]
			bestDecode = decode
			bestScore = score
		}
	}
	if bestScore == 0 {
		return "", false
	}
	s, err := bestDecode(best)
	if err != nil {
		return "", false
	}
	return s, true
}

func nameDecoder(platformID uint16) (int, func([]byte) (string, error)) {
	switch platformID {
	case 3:
		return 3, decodeUTF16BE
	case 0:
		return 2, decodeUTF16BE
	case 1:
		return 1, decodeMacRoman
	}
	return 0, nil
}

func decodeUTF16BE(b []byte) (string, error) {
	out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	return string(out), err
}

func decodeMacRoman(b []byte) (string, error) {
	out, err := charmap.Macintosh.NewDecoder().Bytes(b)
	return string(out), err
}
