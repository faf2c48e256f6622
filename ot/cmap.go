package ot

import "encoding/binary"

// Cmap maps Unicode codepoints to glyph IDs. It picks the best Unicode
// subtable it can find in the font's cmap table (preferring platform 3
// encoding 10 or 1, then platform 0) and keeps a separate format 14
// subtable, if present, for Unicode variation sequences.
type Cmap struct {
	data   []byte
	offset int // offset of the chosen subtable within data
	format uint16

	symbol   bool
	fontPage uint16

	uvsOffset int // offset of the format-14 subtable, or -1
}

// ParseCmap parses a cmap table and selects the subtable the shaping
// engine should use for character-to-glyph lookups.
func ParseCmap(data []byte) (*Cmap, error) {
	if len(data) < 4 {
		return nil, ErrInvalidOffset
	}
	numTables := int(binary.BigEndian.Uint16(data[2:]))
	if len(data) < 4+numTables*8 {
		return nil, ErrInvalidOffset
	}

	type record struct {
		platform, encoding uint16
		offset             uint32
	}
	records := make([]record, numTables)
	for i := 0; i < numTables; i++ {
		off := 4 + i*8
		records[i] = record{
			platform: binary.BigEndian.Uint16(data[off:]),
			encoding: binary.BigEndian.Uint16(data[off+2:]),
			offset:   binary.BigEndian.Uint32(data[off+4:]),
		}
	}

	c := &Cmap{data: data, uvsOffset: -1}

	// Priority: Windows BMP+supplementary (3,10), Windows Unicode BMP (3,1),
	// Unicode platform (0,*), then Windows Symbol (3,0).
	rank := func(r record) int {
		switch {
		case r.platform == 3 && r.encoding == 10:
			return 4
		case r.platform == 3 && r.encoding == 1:
			return 3
		case r.platform == 0:
			return 2
		case r.platform == 3 && r.encoding == 0:
			return 1
		}
		return 0
	}

	best := -1
	bestRank := 0
	for i, r := range records {
		if int(r.offset) >= len(data) {
			continue
		}
		fmtNum := binary.BigEndian.Uint16(data[r.offset:])
		if fmtNum == 14 {
			c.uvsOffset = int(r.offset)
			continue
		}
		if rk := rank(r); rk > bestRank {
			bestRank = rk
			best = i
		}
	}

	if best < 0 {
		return nil, ErrTableNotFound
	}

	r := records[best]
	c.offset = int(r.offset)
	c.format = binary.BigEndian.Uint16(data[c.offset:])
	c.symbol = r.platform == 3 && r.encoding == 0

	return c, nil
}

// IsSymbol reports whether the selected subtable is a Windows Symbol
// (platform 3, encoding 0) cmap, which maps codepoints into the Private
// Use Area starting at U+F000.
func (c *Cmap) IsSymbol() bool {
	return c != nil && c.symbol
}

// SetFontPage sets an additional high-byte "font page" selector used by
// some legacy symbol fonts, applied as an alternate candidate codepoint
// when a direct and 0xF000-shifted lookup both fail.
func (c *Cmap) SetFontPage(page uint16) {
	if c != nil {
		c.fontPage = page
	}
}

// Lookup maps a Unicode codepoint to a glyph ID.
func (c *Cmap) Lookup(cp Codepoint) (GlyphID, bool) {
	if c == nil {
		return 0, false
	}

	if gid, ok := c.lookupRaw(cp); ok && gid != 0 {
		return gid, true
	}

	if c.symbol {
		if cp <= 0xFF {
			if gid, ok := c.lookupRaw(0xF000 | cp); ok && gid != 0 {
				return gid, true
			}
		}
		if c.fontPage != 0 {
			if gid, ok := c.lookupRaw(Codepoint(c.fontPage)|cp); ok && gid != 0 {
				return gid, true
			}
		}
	}

	return 0, false
}

func (c *Cmap) lookupRaw(cp Codepoint) (GlyphID, bool) {
	switch c.format {
	case 0:
		return c.lookupFormat0(cp)
	case 4:
		return c.lookupFormat4(cp)
	case 6:
		return c.lookupFormat6(cp)
	case 12:
		return c.lookupFormat12(cp)
	}
	return 0, false
}

func (c *Cmap) lookupFormat0(cp Codepoint) (GlyphID, bool) {
	if cp > 255 {
		return 0, false
	}
	off := c.offset + 6 + int(cp)
	if off >= len(c.data) {
		return 0, false
	}
	return GlyphID(c.data[off]), true
}

func (c *Cmap) lookupFormat4(cp Codepoint) (GlyphID, bool) {
	if cp > 0xFFFF {
		return 0, false
	}
	data := c.data
	segCountX2 := int(binary.BigEndian.Uint16(data[c.offset+6:]))
	segCount := segCountX2 / 2

	endCodesOff := c.offset + 14
	startCodesOff := endCodesOff + segCountX2 + 2
	idDeltaOff := startCodesOff + segCountX2
	idRangeOff := idDeltaOff + segCountX2

	u16 := uint16(cp)
	lo, hi := 0, segCount
	for lo < hi {
		mid := (lo + hi) / 2
		end := binary.BigEndian.Uint16(data[endCodesOff+mid*2:])
		if u16 > end {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= segCount {
		return 0, false
	}

	start := binary.BigEndian.Uint16(data[startCodesOff+lo*2:])
	end := binary.BigEndian.Uint16(data[endCodesOff+lo*2:])
	if u16 < start || u16 > end {
		return 0, false
	}

	idDelta := int16(binary.BigEndian.Uint16(data[idDeltaOff+lo*2:]))
	idRangeOffset := binary.BigEndian.Uint16(data[idRangeOff+lo*2:])

	if idRangeOffset == 0 {
		return GlyphID(int32(u16) + int32(idDelta)), true
	}

	glyphOff := idRangeOff + lo*2 + int(idRangeOffset) + int(u16-start)*2
	if glyphOff+2 > len(data) {
		return 0, false
	}
	gid := binary.BigEndian.Uint16(data[glyphOff:])
	if gid == 0 {
		return 0, true
	}
	return GlyphID(int32(gid) + int32(idDelta)), true
}

func (c *Cmap) lookupFormat6(cp Codepoint) (GlyphID, bool) {
	data := c.data
	first := Codepoint(binary.BigEndian.Uint16(data[c.offset+6:]))
	count := int(binary.BigEndian.Uint16(data[c.offset+8:]))
	if cp < first || cp >= first+Codepoint(count) {
		return 0, false
	}
	off := c.offset + 10 + int(cp-first)*2
	if off+2 > len(data) {
		return 0, false
	}
	return GlyphID(binary.BigEndian.Uint16(data[off:])), true
}

func (c *Cmap) lookupFormat12(cp Codepoint) (GlyphID, bool) {
	data := c.data
	numGroups := int(binary.BigEndian.Uint32(data[c.offset+12:]))
	groupsOff := c.offset + 16

	lo, hi := 0, numGroups
	for lo < hi {
		mid := (lo + hi) / 2
		off := groupsOff + mid*12
		startChar := binary.BigEndian.Uint32(data[off:])
		if cp < startChar {
			hi = mid
		} else {
			endChar := binary.BigEndian.Uint32(data[off+4:])
			if cp > endChar {
				lo = mid + 1
			} else {
				startGlyph := binary.BigEndian.Uint32(data[off+8:])
				return GlyphID(startGlyph + (cp - startChar)), true
			}
		}
	}
	return 0, false
}

// LookupVariation resolves a Unicode variation sequence (base codepoint
// plus variation selector) via the format 14 subtable, when present.
func (c *Cmap) LookupVariation(base, selector Codepoint) (GlyphID, bool) {
	if c == nil || c.uvsOffset < 0 {
		return 0, false
	}
	data := c.data
	off := c.uvsOffset
	numRecords := int(binary.BigEndian.Uint32(data[off+2:]))
	recordsOff := off + 6

	lo, hi := 0, numRecords
	for lo < hi {
		mid := (lo + hi) / 2
		recOff := recordsOff + mid*11
		varSel := Codepoint(u24(data[recOff:]))
		if selector < varSel {
			hi = mid
		} else if selector > varSel {
			lo = mid + 1
		} else {
			defaultUVSOff := binary.BigEndian.Uint32(data[recOff+3:])
			nonDefaultUVSOff := binary.BigEndian.Uint32(data[recOff+7:])
			if nonDefaultUVSOff != 0 {
				if gid, ok := lookupNonDefaultUVS(data, off+int(nonDefaultUVSOff), base); ok {
					return gid, true
				}
			}
			if defaultUVSOff != 0 {
				// A default UVS entry means "use the glyph the base
				// codepoint would normally map to" — defer to the
				// regular cmap lookup.
				return 0, false
			}
			return 0, false
		}
	}
	return 0, false
}

func lookupNonDefaultUVS(data []byte, off int, cp Codepoint) (GlyphID, bool) {
	if off+4 > len(data) {
		return 0, false
	}
	numMappings := int(binary.BigEndian.Uint32(data[off:]))
	mappingsOff := off + 4

	lo, hi := 0, numMappings
	for lo < hi {
		mid := (lo + hi) / 2
		recOff := mappingsOff + mid*5
		unicodeValue := u24(data[recOff:])
		if cp < unicodeValue {
			hi = mid
		} else if cp > unicodeValue {
			lo = mid + 1
		} else {
			return GlyphID(binary.BigEndian.Uint16(data[recOff+3:])), true
		}
	}
	return 0, false
}

func u24(data []byte) Codepoint {
	return Codepoint(data[0])<<16 | Codepoint(data[1])<<8 | Codepoint(data[2])
}

// OS2 holds the small slice of the OS/2 table the shaper consults.
type OS2 struct {
	Version      uint16
	FsSelection  uint16
}

// ParseOS2 parses just enough of the OS/2 table to read fsSelection,
// which symbol-font detection uses to pick a font page.
func ParseOS2(data []byte) (*OS2, error) {
	if len(data) < 64 {
		return nil, ErrInvalidOffset
	}
	return &OS2{
		Version:     binary.BigEndian.Uint16(data[0:]),
		FsSelection: binary.BigEndian.Uint16(data[62:]),
	}, nil
}
