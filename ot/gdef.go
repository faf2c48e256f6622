package ot

import "encoding/binary"

// Glyph class values from the GDEF GlyphClassDef table.
const (
	GlyphClassBase      = 1
	GlyphClassLigature  = 2
	GlyphClassMark      = 3
	GlyphClassComponent = 4
)

// GDEF holds the parts of the Glyph Definition table the shaping engine
// consults while walking lookups: glyph classes (for the skip-iterator's
// IGNORE_* lookup flags), mark-attachment classes, and mark glyph sets
// (for per-lookup mark filtering sets).
type GDEF struct {
	glyphClassDef     *ClassDef
	markAttachClassDef *ClassDef
	markGlyphSets     []*Coverage
}

// ParseGDEF parses a GDEF table.
func ParseGDEF(data []byte) (*GDEF, error) {
	if len(data) < 12 {
		return nil, ErrInvalidOffset
	}

	minorVersion := binary.BigEndian.Uint16(data[2:])

	g := &GDEF{}

	if off := binary.BigEndian.Uint16(data[4:]); off != 0 {
		if cd, err := ParseClassDef(data, int(off)); err == nil {
			g.glyphClassDef = cd
		}
	}

	if off := binary.BigEndian.Uint16(data[10:]); off != 0 {
		if cd, err := ParseClassDef(data, int(off)); err == nil {
			g.markAttachClassDef = cd
		}
	}

	// MarkGlyphSetsDef was added in GDEF 1.2.
	if minorVersion >= 2 && len(data) >= 14 {
		if off := binary.BigEndian.Uint16(data[12:]); off != 0 {
			g.markGlyphSets = parseMarkGlyphSets(data, int(off))
		}
	}

	return g, nil
}

func parseMarkGlyphSets(data []byte, offset int) []*Coverage {
	if offset+4 > len(data) {
		return nil
	}
	format := binary.BigEndian.Uint16(data[offset:])
	if format != 1 {
		return nil
	}
	count := int(binary.BigEndian.Uint16(data[offset+2:]))
	if offset+4+count*4 > len(data) {
		return nil
	}
	sets := make([]*Coverage, count)
	for i := 0; i < count; i++ {
		covOff := binary.BigEndian.Uint32(data[offset+4+i*4:])
		if covOff == 0 {
			continue
		}
		cov, err := ParseCoverage(data, offset+int(covOff))
		if err == nil {
			sets[i] = cov
		}
	}
	return sets
}

// HasGlyphClasses reports whether the font carries a GlyphClassDef.
func (g *GDEF) HasGlyphClasses() bool {
	return g != nil && g.glyphClassDef != nil
}

// GetGlyphClass returns the glyph's class (GlyphClassBase, GlyphClassMark,
// ...), or 0 if the glyph is unclassified or there is no GlyphClassDef.
func (g *GDEF) GetGlyphClass(glyph GlyphID) int {
	if g == nil || g.glyphClassDef == nil {
		return 0
	}
	return g.glyphClassDef.GetClass(glyph)
}

// GetMarkAttachClass returns the glyph's mark-attachment class, or 0 if
// the glyph is unclassified or there is no MarkAttachClassDef.
func (g *GDEF) GetMarkAttachClass(glyph GlyphID) int {
	if g == nil || g.markAttachClassDef == nil {
		return 0
	}
	return g.markAttachClassDef.GetClass(glyph)
}

// IsInMarkGlyphSet reports whether glyph belongs to the mark glyph set
// numbered setIndex. A missing MarkGlyphSetsDef, or an out-of-range
// index, never matches.
func (g *GDEF) IsInMarkGlyphSet(glyph GlyphID, setIndex int) bool {
	if g == nil || setIndex < 0 || setIndex >= len(g.markGlyphSets) {
		return false
	}
	cov := g.markGlyphSets[setIndex]
	if cov == nil {
		return false
	}
	return cov.GetCoverage(glyph) != NotCovered
}
