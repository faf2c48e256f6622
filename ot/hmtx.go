package ot

import "encoding/binary"

// Hmtx holds per-glyph horizontal advance widths. Glyphs beyond the last
// explicit entry repeat the final advance width, per the hmtx format.
type Hmtx struct {
	advances []uint16
}

// ParseHmtxFromFont reads the hhea and hmtx tables from font and builds
// an Hmtx. Both tables are required; hhea supplies numberOfHMetrics.
func ParseHmtxFromFont(font *Font) (*Hmtx, error) {
	hheaData, err := font.TableData(TagHhea)
	if err != nil || len(hheaData) < 36 {
		return nil, ErrTableNotFound
	}
	numberOfHMetrics := int(binary.BigEndian.Uint16(hheaData[34:]))

	hmtxData, err := font.TableData(TagHmtx)
	if err != nil {
		return nil, err
	}
	if numberOfHMetrics == 0 || len(hmtxData) < numberOfHMetrics*4 {
		return nil, ErrInvalidTable
	}

	numGlyphs := font.NumGlyphs()
	if numGlyphs < numberOfHMetrics {
		numGlyphs = numberOfHMetrics
	}

	h := &Hmtx{advances: make([]uint16, numGlyphs)}
	for i := 0; i < numberOfHMetrics; i++ {
		h.advances[i] = binary.BigEndian.Uint16(hmtxData[i*4:])
	}
	last := h.advances[numberOfHMetrics-1]
	for i := numberOfHMetrics; i < numGlyphs; i++ {
		h.advances[i] = last
	}

	return h, nil
}

// GetAdvanceWidth returns the advance width of glyph in font design units.
func (h *Hmtx) GetAdvanceWidth(glyph GlyphID) uint16 {
	if h == nil || int(glyph) >= len(h.advances) {
		if h != nil && len(h.advances) > 0 {
			return h.advances[len(h.advances)-1]
		}
		return 0
	}
	return h.advances[glyph]
}
