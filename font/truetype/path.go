package truetype

import "github.com/cwbudde/algo-raster/geom"

type pathOpKind uint8

const (
	opMoveTo pathOpKind = iota
	opLineTo
	opQuadTo
)

// pathOp is one outline operation in font units. ctrl is meaningful for
// opQuadTo only.
type pathOp struct {
	kind pathOpKind
	ctrl geom.Point
	p    geom.Point
}

// pathBuilder turns a run of n contour points from the shared point
// stream into path operations. Consecutive off-curve points get an
// implied on-curve midpoint between them, and the contour is closed
// back to its starting point.
type pathBuilder struct {
	src       *glyphPoints
	remaining int

	firstOnCurve  geom.Point
	firstOffCurve geom.Point
	lastOffCurve  geom.Point
	haveFirstOn   bool
	haveFirstOff  bool
	haveLastOff   bool

	closing bool
	allDone bool
}

func newPathBuilder(src *glyphPoints, n int) *pathBuilder {
	return &pathBuilder{src: src, remaining: n}
}

func (b *pathBuilder) next() (pathOp, bool) {
	for {
		if b.closing {
			return b.close()
		}
		if b.remaining == 0 {
			b.closing = true
			continue
		}
		onCurve, x, y, ok := b.src.next()
		if !ok {
			b.remaining = 0
			b.closing = true
			continue
		}
		b.remaining--
		p := geom.Pt(float32(x), float32(y))

		if !b.haveFirstOn {
			if onCurve {
				b.firstOnCurve = p
				b.haveFirstOn = true
				return pathOp{kind: opMoveTo, p: p}, true
			}
			if !b.haveFirstOff {
				b.firstOffCurve = p
				b.haveFirstOff = true
				continue
			}
			// Contour starts off-curve twice: open at the implied
			// midpoint.
			mid := geom.Lerp(0.5, b.firstOffCurve, p)
			b.firstOnCurve = mid
			b.haveFirstOn = true
			b.lastOffCurve = p
			b.haveLastOff = true
			return pathOp{kind: opMoveTo, p: mid}, true
		}

		switch {
		case !b.haveLastOff && !onCurve:
			b.lastOffCurve = p
			b.haveLastOff = true
		case !b.haveLastOff:
			return pathOp{kind: opLineTo, p: p}, true
		case !onCurve:
			op := pathOp{
				kind: opQuadTo,
				ctrl: b.lastOffCurve,
				p:    geom.Lerp(0.5, b.lastOffCurve, p),
			}
			b.lastOffCurve = p
			return op, true
		default:
			b.haveLastOff = false
			return pathOp{kind: opQuadTo, ctrl: b.lastOffCurve, p: p}, true
		}
	}
}

// close emits the final segments joining the last point back to the
// contour start. A pending off-curve point at either end becomes a
// quadratic; pending points at both ends meet at an implied midpoint.
func (b *pathBuilder) close() (pathOp, bool) {
	if b.allDone || !b.haveFirstOn {
		return pathOp{}, false
	}
	switch {
	case !b.haveFirstOff && !b.haveLastOff:
		b.allDone = true
		return pathOp{kind: opLineTo, p: b.firstOnCurve}, true
	case !b.haveFirstOff:
		b.allDone = true
		return pathOp{kind: opQuadTo, ctrl: b.lastOffCurve, p: b.firstOnCurve}, true
	case !b.haveLastOff:
		b.allDone = true
		return pathOp{kind: opQuadTo, ctrl: b.firstOffCurve, p: b.firstOnCurve}, true
	default:
		op := pathOp{
			kind: opQuadTo,
			ctrl: b.lastOffCurve,
			p:    geom.Lerp(0.5, b.lastOffCurve, b.firstOffCurve),
		}
		b.haveLastOff = false
		return op, true
	}
}
