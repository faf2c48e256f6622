package ot

import "encoding/binary"

// Head holds the handful of head table fields the glyf/loca parsers need.
type Head struct {
	UnitsPerEm       uint16
	IndexToLocFormat int16
}

// ParseHead parses the head table.
func ParseHead(data []byte) (*Head, error) {
	if len(data) < 54 {
		return nil, ErrInvalidOffset
	}
	return &Head{
		UnitsPerEm:       binary.BigEndian.Uint16(data[18:]),
		IndexToLocFormat: int16(binary.BigEndian.Uint16(data[50:])),
	}, nil
}

// ParseLoca parses the loca table into byte offsets of glyf table entries.
// There are numGlyphs+1 entries; entry i+1 minus entry i gives glyph i's
// length. longFormat selects the 32-bit loca variant (indexToLocFormat=1).
func ParseLoca(data []byte, numGlyphs int, longFormat int16) ([]uint32, error) {
	n := numGlyphs + 1
	offsets := make([]uint32, n)
	if longFormat != 0 {
		if len(data) < n*4 {
			return nil, ErrInvalidOffset
		}
		for i := 0; i < n; i++ {
			offsets[i] = binary.BigEndian.Uint32(data[i*4:])
		}
	} else {
		if len(data) < n*2 {
			return nil, ErrInvalidOffset
		}
		for i := 0; i < n; i++ {
			offsets[i] = uint32(binary.BigEndian.Uint16(data[i*2:])) * 2
		}
	}
	return offsets, nil
}

// GlyphExtents is a glyph's bounding box, in font design units, expressed
// the way OpenType extents are: XBearing/YBearing locate the top-left
// corner relative to the glyph origin, Width is positive rightward and
// Height is negative downward (i.e. YBearing+Height is the bottom edge).
type GlyphExtents struct {
	XBearing, YBearing int16
	Width, Height      int16
}

// GlyphData is one glyph's raw record from the glyf table.
type GlyphData struct {
	NumberOfContours int16
	XMin, YMin       int16
	XMax, YMax       int16
	Data             []byte // the full glyph record, header included
}

// Glyf is a parsed TrueType glyf/loca pair.
type Glyf struct {
	data []byte
	loca []uint32
}

// ParseGlyf builds a Glyf from the raw glyf table bytes and a parsed loca.
func ParseGlyf(data []byte, loca []uint32) (*Glyf, error) {
	if len(loca) < 2 {
		return nil, ErrInvalidOffset
	}
	return &Glyf{data: data, loca: loca}, nil
}

// GetGlyphBytes returns the raw glyf record for gid, or nil if gid is out
// of range or the glyph is empty (e.g. space).
func (g *Glyf) GetGlyphBytes(gid GlyphID) []byte {
	i := int(gid)
	if g == nil || i+1 >= len(g.loca) {
		return nil
	}
	start, end := g.loca[i], g.loca[i+1]
	if start >= end || int(end) > len(g.data) {
		return nil
	}
	return g.data[start:end]
}

// GetGlyph parses the glyph header for gid. Returns nil for an empty
// glyph (advance-only, no outline — e.g. space).
func (g *Glyf) GetGlyph(gid GlyphID) *GlyphData {
	data := g.GetGlyphBytes(gid)
	if data == nil || len(data) < 10 {
		return nil
	}
	return &GlyphData{
		NumberOfContours: int16(binary.BigEndian.Uint16(data[0:])),
		XMin:             int16(binary.BigEndian.Uint16(data[2:])),
		YMin:             int16(binary.BigEndian.Uint16(data[4:])),
		XMax:             int16(binary.BigEndian.Uint16(data[6:])),
		YMax:             int16(binary.BigEndian.Uint16(data[8:])),
		Data:             data,
	}
}

// GetGlyphExtents returns gid's static bounding box from the glyf header.
// For composite glyphs this is the header's own bbox (already accounts
// for component placement, per the TrueType spec); it is not recomputed
// from recursively resolved components.
func (g *Glyf) GetGlyphExtents(gid GlyphID) (GlyphExtents, bool) {
	glyph := g.GetGlyph(gid)
	if glyph == nil {
		return GlyphExtents{}, false
	}
	return GlyphExtents{
		XBearing: glyph.XMin,
		YBearing: glyph.YMax,
		Width:    glyph.XMax - glyph.XMin,
		Height:   glyph.YMin - glyph.YMax,
	}, true
}

// GetContourPointCount returns the number of outline points in a simple
// glyph (the sum of all contours' point counts). Composite and empty
// glyphs report 0, since gvar phantom-point math for composites is not
// handled here.
func (g *Glyf) GetContourPointCount(gid GlyphID) int {
	glyph := g.GetGlyph(gid)
	if glyph == nil || glyph.NumberOfContours <= 0 {
		return 0
	}
	numContours := int(glyph.NumberOfContours)
	if len(glyph.Data) < 10+numContours*2 {
		return 0
	}
	lastEnd := binary.BigEndian.Uint16(glyph.Data[10+(numContours-1)*2:])
	return int(lastEnd) + 1
}

// GlyfPoint is a single TrueType outline point in font design units.
type GlyfPoint struct {
	X, Y    float64
	OnCurve bool
}

// GlyphPoint is a bare 2D point, used by gvar delta computation.
type GlyphPoint struct {
	X, Y float64
}

// ParseSimpleGlyph decodes a simple glyph's contour points from its raw
// glyf record. Composite glyphs (NumberOfContours < 0) return an error.
func ParseSimpleGlyph(data []byte) ([]GlyfPoint, []int, error) {
	if len(data) < 10 {
		return nil, nil, ErrInvalidOffset
	}
	numberOfContours := int(int16(binary.BigEndian.Uint16(data[0:])))
	if numberOfContours < 0 {
		return nil, nil, ErrInvalidFormat
	}
	if numberOfContours == 0 {
		return nil, nil, nil
	}

	off := 10
	if len(data) < off+numberOfContours*2 {
		return nil, nil, ErrInvalidOffset
	}
	endPts := make([]int, numberOfContours)
	for i := 0; i < numberOfContours; i++ {
		endPts[i] = int(binary.BigEndian.Uint16(data[off+i*2:]))
	}
	off += numberOfContours * 2
	numPoints := endPts[numberOfContours-1] + 1

	if off+2 > len(data) {
		return nil, nil, ErrInvalidOffset
	}
	instructionLength := int(binary.BigEndian.Uint16(data[off:]))
	off += 2 + instructionLength

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		if off >= len(data) {
			return nil, nil, ErrInvalidOffset
		}
		f := data[off]
		off++
		flags[i] = f
		i++
		const repeatFlag = 0x08
		if f&repeatFlag != 0 {
			if off >= len(data) {
				return nil, nil, ErrInvalidOffset
			}
			repeatCount := int(data[off])
			off++
			for r := 0; r < repeatCount && i < numPoints; r++ {
				flags[i] = f
				i++
			}
		}
	}

	const (
		onCurve     = 0x01
		xShort      = 0x02
		yShort      = 0x04
		xSameOrPos  = 0x10
		ySameOrPos  = 0x20
	)

	points := make([]GlyfPoint, numPoints)

	x := 0
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		switch {
		case f&xShort != 0:
			if off >= len(data) {
				return nil, nil, ErrInvalidOffset
			}
			d := int(data[off])
			off++
			if f&xSameOrPos == 0 {
				d = -d
			}
			x += d
		case f&xSameOrPos == 0:
			if off+2 > len(data) {
				return nil, nil, ErrInvalidOffset
			}
			x += int(int16(binary.BigEndian.Uint16(data[off:])))
			off += 2
		}
		points[i].X = float64(x)
		points[i].OnCurve = f&onCurve != 0
	}

	y := 0
	for i := 0; i < numPoints; i++ {
		f := flags[i]
		switch {
		case f&yShort != 0:
			if off >= len(data) {
				return nil, nil, ErrInvalidOffset
			}
			d := int(data[off])
			off++
			if f&ySameOrPos == 0 {
				d = -d
			}
			y += d
		case f&ySameOrPos == 0:
			if off+2 > len(data) {
				return nil, nil, ErrInvalidOffset
			}
			y += int(int16(binary.BigEndian.Uint16(data[off:])))
			off += 2
		}
		points[i].Y = float64(y)
	}

	return points, endPts, nil
}

// Composite glyph component flags (TrueType glyf spec).
const (
	argAreWords     = 0x0001
	argsAreXYValues = 0x0002
	weHaveAScale    = 0x0008
	moreComponents  = 0x0020
	weHaveXYScale   = 0x0040
	weHave2x2       = 0x0080
)
