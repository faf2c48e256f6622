package ot

import "github.com/npillmayer/schuko/tracing"

// shaperTrace is the scoped logger for script-shaper selection and
// plan compilation.
func shaperTrace() tracing.Trace {
	return tracing.Select("ot.shaper")
}

// A script-specific shaper customizes particular phases of the shaping
// pipeline (mask setup, normalization hooks, mark-advance zeroing). The
// set of shapers is closed (Arabic, Indic, Khmer, Myanmar, USE, Thai,
// Hebrew, Hangul, Qaag, default); new scripts are routed to one of
// these via SelectShaper/SelectShaperWithFont rather than growing the
// set.

// ZeroWidthMarksType controls how zero-width marks are handled.
type ZeroWidthMarksType int

const (
	// ZeroWidthMarksNone - Don't zero mark advances
	ZeroWidthMarksNone ZeroWidthMarksType = iota
	// ZeroWidthMarksByGDEFEarly - Zero mark advances early (before GPOS)
	ZeroWidthMarksByGDEFEarly
	// ZeroWidthMarksByGDEFLate - Zero mark advances late (after GPOS)
	ZeroWidthMarksByGDEFLate
)

// OTShaper defines the interface for script-specific shapers.
//
// All function fields are optional (nil means use default behavior).
type OTShaper struct {
	// Name identifies this shaper (for debugging)
	Name string

	// CollectFeatures is called during plan compilation.
	// Shapers should add their features to the plan's map.
	CollectFeatures func(plan *ShapePlan)

	// OverrideFeatures is called after common features are added.
	// Shapers can override or modify features here.
	OverrideFeatures func(plan *ShapePlan)

	// DataCreate is called at the end of plan compilation.
	// Returns shaper-specific data that will be stored in the plan.
	DataCreate func(plan *ShapePlan) interface{}

	// DataDestroy is called when the plan is destroyed.
	DataDestroy func(data interface{})

	// PreprocessText is called before shaping starts.
	// Shapers can modify the buffer text here.
	PreprocessText func(plan *ShapePlan, buf *Buffer, font *Font)

	// PostprocessGlyphs is called after shaping ends.
	// Shapers can modify glyphs here.
	PostprocessGlyphs func(plan *ShapePlan, buf *Buffer, font *Font)

	// Decompose is called during normalization.
	// Returns the decomposition of a codepoint (a, b) or ok=false if not decomposable.
	Decompose func(c *NormalizeContext, ab Codepoint) (a, b Codepoint, ok bool)

	// Compose is called during normalization.
	// Returns the composition of (a, b) or ok=false if not composable.
	Compose func(c *NormalizeContext, a, b Codepoint) (ab Codepoint, ok bool)

	// SetupMasks is called to set feature masks on glyphs.
	// Shapers should use the plan's map to get masks and set them on the buffer.
	SetupMasks func(plan *ShapePlan, buf *Buffer, font *Font)

	// ReorderMarks is called to reorder combining marks.
	ReorderMarks func(plan *ShapePlan, buf *Buffer, start, end int)

	// GPOSTag - The GPOS script tag recorded for the shaper. The shaping code does
	// not read it; GPOS is applied whatever script tag the font's GPOS table uses.
	GPOSTag Tag

	// NormalizationPreference controls how normalization is performed.
	NormalizationPreference NormalizationMode

	// ZeroWidthMarks controls how zero-width marks are handled.
	ZeroWidthMarks ZeroWidthMarksType

	// FallbackPosition enables fallback positioning when GPOS is not available.
	FallbackPosition bool
}

// NormalizeContext provides context for decompose/compose callbacks.
type NormalizeContext struct {
	Plan   *ShapePlan
	Buffer *Buffer
	Font   *Font
	Shaper *Shaper
}

// ShapePlan holds a compiled shaping plan.
//
// The plan is compiled once and can be reused for multiple shaping calls.
// This improves performance by avoiding repeated feature lookups.
type ShapePlan struct {
	// Shaper is the script-specific shaper for this plan
	Shaper *OTShaper

	// Map contains the compiled lookup map
	Map *OTMap

	// Props contains segment properties (direction, script, language)
	Props SegmentProperties

	// ShaperData holds shaper-specific data created by DataCreate
	ShaperData interface{}

	// Cached masks for common features
	FracMask uint32
	NumrMask uint32
	DnomMask uint32
	HasFrac  bool

	RTLMMask uint32
	HasVert  bool

	KernMask         uint32
	RequestedKerning bool

	// Internal references
	gsub *GSUB
	gpos *GPOS
	gdef *GDEF
}

// SegmentProperties holds text segment properties.
type SegmentProperties struct {
	Direction Direction
	Script    Tag
	Language  Tag
}

// --- Predefined Shapers ---

// DefaultShaper is the default shaper for scripts without special handling.
var DefaultShaper = &OTShaper{
	Name:                    "default",
	NormalizationPreference: NormalizationModeAuto,
	ZeroWidthMarks:          ZeroWidthMarksByGDEFLate,
	FallbackPosition:        true,
}

// QaagShaper is the shaper for Zawgyi (Myanmar visual encoding).
//
// Zawgyi is a legacy encoding for Myanmar that uses visual ordering.
// Characters are already in display order, so no reordering is needed.
// All callbacks are nil (use default behavior), but with:
// - NormalizationModeNone: No normalization
// - ZeroWidthMarksNone: Don't zero mark advances
// - FallbackPosition: false: No fallback positioning
var QaagShaper = &OTShaper{
	Name:                    "qaag",
	NormalizationPreference: NormalizationModeNone,
	ZeroWidthMarks:          ZeroWidthMarksNone,
	FallbackPosition:        false,
}

// --- Shaper Selection ---

// indicFontScripts is the set of Unicode scripts whose shaper choice
// depends on which GSUB script tag the font itself exposes (a font
// carrying the newer "...3" generation tag wants the USE shaper even
// though its Unicode script is classically Indic).
var indicFontScripts = map[Tag]bool{
	MakeTag('D', 'e', 'v', 'a'): true, // Devanagari
	MakeTag('B', 'e', 'n', 'g'): true, // Bengali
	MakeTag('G', 'u', 'r', 'u'): true, // Gurmukhi
	MakeTag('G', 'u', 'j', 'r'): true, // Gujarati
	MakeTag('O', 'r', 'y', 'a'): true, // Oriya
	MakeTag('T', 'a', 'm', 'l'): true, // Tamil
	MakeTag('T', 'e', 'l', 'u'): true, // Telugu
	MakeTag('K', 'n', 'd', 'a'): true, // Kannada
	MakeTag('M', 'l', 'y', 'm'): true, // Malayalam
}

var tagDFLT = MakeTag('D', 'F', 'L', 'T')
var tagLatn = MakeTag('l', 'a', 't', 'n')

// SelectShaperWithFont returns the appropriate shaper based on script, direction, and font script tag.
//
// script tag version 3 (e.g., 'knd3', 'dev3') use the USE shaper instead of the Indic shaper.
//
//	else if ((gsub_script & 0x000000FF) == '3')
//
// Parameters:
//   - script: The Unicode script tag (e.g., 'Knda' for Kannada)
//   - direction: Text direction
//   - fontScriptTag: The actual script tag found in the font's GSUB table (e.g., 'knd3')
func SelectShaperWithFont(script Tag, direction Direction, fontScriptTag Tag) *OTShaper {
	switch {
	case indicFontScripts[script]:
		return selectIndicFamilyShaper(fontScriptTag)
	case script == MakeTag('M', 'y', 'm', 'r'):
		return selectMyanmarFamilyShaper(fontScriptTag)
	case script == MakeTag('Q', 'a', 'a', 'g'):
		// Zawgyi: already in visual order, no reordering needed.
		return QaagShaper
	}
	return SelectShaper(script, direction)
}

// selectIndicFamilyShaper picks among Default/USE/Indic for a script in
// indicFontScripts, based on the font's own GSUB script tag generation:
// a tag ending in '3' (e.g. "dev3") signals a USE-ready font; DFLT/latn
// means the font carries no script-specific Indic rules at all.
func selectIndicFamilyShaper(fontScriptTag Tag) *OTShaper {
	if fontScriptTag == tagDFLT || fontScriptTag == tagLatn {
		return DefaultShaper
	}
	if byte(fontScriptTag&0xFF) == '3' {
		return USEShaper
	}
	return IndicShaper
}

func selectMyanmarFamilyShaper(fontScriptTag Tag) *OTShaper {
	mymr := MakeTag('m', 'y', 'm', 'r')
	if fontScriptTag == tagDFLT || fontScriptTag == tagLatn || fontScriptTag == mymr {
		return DefaultShaper
	}
	return MyanmarShaper
}

// scriptTagList turns a run of rune-quads into Tag values; kept private
// to this file since it only exists to make the big per-family script
// tables below readable as data rather than as a 100-case switch.
func scriptTagList(quads ...[4]byte) []Tag {
	out := make([]Tag, len(quads))
	for i, q := range quads {
		out[i] = MakeTag(q[0], q[1], q[2], q[3])
	}
	return out
}

func tagSet(tags []Tag) map[Tag]bool {
	m := make(map[Tag]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

// arabicJoiningScripts get the 7-state joining automaton (Arabic and
// its relatives); direction still matters for Arabic/Syriac proper
// since the default shaper covers a stray vertical run.
var arabicJoiningScripts = tagSet(scriptTagList(
	[4]byte{'A', 'r', 'a', 'b'}, [4]byte{'S', 'y', 'r', 'c'},
))

var mongolianFamilyScripts = tagSet(scriptTagList(
	[4]byte{'M', 'o', 'n', 'g'}, [4]byte{'P', 'h', 'a', 'g'},
))

var khmerScript = MakeTag('K', 'h', 'm', 'r')
var myanmarScript = MakeTag('M', 'y', 'm', 'r')
var qaagScript = MakeTag('Q', 'a', 'a', 'g')

// useScripts is every script driven by the Universal Shaping Engine:
// Sinhala plus the long tail of Brahmic-derived and Arabic-joining
// scripts that don't warrant a bespoke shaper of their own.
var useScripts = tagSet(scriptTagList(
	[4]byte{'S', 'i', 'n', 'h'}, [4]byte{'J', 'a', 'v', 'a'}, [4]byte{'B', 'a', 'l', 'i'},
	[4]byte{'S', 'u', 'n', 'd'}, [4]byte{'T', 'i', 'b', 't'}, [4]byte{'A', 'h', 'o', 'm'},
	[4]byte{'B', 'a', 't', 'k'}, [4]byte{'B', 'h', 'k', 's'}, [4]byte{'B', 'r', 'a', 'h'},
	[4]byte{'B', 'u', 'g', 'i'}, [4]byte{'B', 'u', 'h', 'd'}, [4]byte{'C', 'a', 'k', 'm'},
	[4]byte{'C', 'h', 'a', 'm'}, [4]byte{'D', 'i', 'a', 'k'}, [4]byte{'D', 'o', 'g', 'r'},
	[4]byte{'G', 'r', 'a', 'n'}, [4]byte{'G', 'o', 'n', 'g'}, [4]byte{'G', 'u', 'k', 'h'},
	[4]byte{'H', 'a', 'n', 'o'}, [4]byte{'K', 'a', 'i', 't'}, [4]byte{'K', 'a', 'w', 'i'},
	[4]byte{'K', 'a', 'l', 'i'}, [4]byte{'K', 'h', 'a', 'r'}, [4]byte{'K', 'h', 'o', 'j'},
	[4]byte{'S', 'i', 'n', 'd'}, [4]byte{'K', 'r', 'a', 'i'}, [4]byte{'L', 'e', 'p', 'c'},
	[4]byte{'L', 'i', 'm', 'b'}, [4]byte{'M', 'a', 'h', 'j'}, [4]byte{'M', 'a', 'k', 'a'},
	[4]byte{'M', 'a', 'r', 'c'}, [4]byte{'G', 'o', 'n', 'm'}, [4]byte{'M', 't', 'e', 'i'},
	[4]byte{'M', 'o', 'd', 'i'}, [4]byte{'M', 'u', 'l', 't'}, [4]byte{'N', 'a', 'n', 'd'},
	[4]byte{'T', 'a', 'l', 'u'}, [4]byte{'N', 'e', 'w', 'a'}, [4]byte{'R', 'j', 'n', 'g'},
	[4]byte{'S', 'a', 'u', 'r'}, [4]byte{'S', 'h', 'r', 'd'}, [4]byte{'S', 'i', 'd', 'd'},
	[4]byte{'S', 'o', 'y', 'o'}, [4]byte{'S', 'y', 'l', 'o'}, [4]byte{'T', 'g', 'l', 'g'},
	[4]byte{'T', 'a', 'g', 'b'}, [4]byte{'T', 'a', 'l', 'e'}, [4]byte{'L', 'a', 'n', 'a'},
	[4]byte{'T', 'a', 'v', 't'}, [4]byte{'T', 'a', 'k', 'r'}, [4]byte{'T', 'i', 'r', 'h'},
	[4]byte{'T', 'u', 'l', 'u'}, [4]byte{'Z', 'a', 'n', 'b'},
	// Arabic-like joining scripts routed to USE rather than Arabic:
	[4]byte{'A', 'd', 'l', 'm'}, [4]byte{'C', 'h', 'r', 's'}, [4]byte{'R', 'o', 'h', 'g'},
	[4]byte{'M', 'a', 'n', 'd'}, [4]byte{'M', 'a', 'n', 'i'}, [4]byte{'N', 'k', 'o', ' '},
	[4]byte{'O', 'u', 'g', 'r'}, [4]byte{'P', 'h', 'l', 'p'}, [4]byte{'S', 'o', 'g', 'd'},
))

var thaiFamilyScripts = tagSet(scriptTagList(
	[4]byte{'T', 'h', 'a', 'i'}, [4]byte{'L', 'a', 'o', ' '},
))

var hebrewScript = MakeTag('H', 'e', 'b', 'r')
var hangulScript = MakeTag('H', 'a', 'n', 'g')

// SelectShaper returns the appropriate shaper for the given script and direction.
// Script tags are ISO 15924 format (uppercase-first): 'Arab', 'Hebr', etc.
// Note: For Indic scripts, prefer SelectShaperWithFont which considers the font's script tag.
func SelectShaper(script Tag, direction Direction) *OTShaper {
	switch {
	case arabicJoiningScripts[script]:
		if direction.IsHorizontal() {
			return ArabicShaper
		}
		return DefaultShaper
	case mongolianFamilyScripts[script]:
		// Arabic joining logic applies regardless of direction here.
		return ArabicShaper
	case indicFontScripts[script]:
		return IndicShaper
	case script == khmerScript:
		return KhmerShaper
	case script == myanmarScript:
		return MyanmarShaper
	case script == qaagScript:
		return DefaultShaper
	case useScripts[script]:
		return USEShaper
	case thaiFamilyScripts[script]:
		return ThaiShaper
	case script == hebrewScript:
		return HebrewShaper
	case script == hangulScript:
		return HangulShaper
	default:
		shaperTrace().Debugf("no dedicated shaper for script %s, using default", script.String())
		return DefaultShaper
	}
}

// --- Script Shapers ---
// Arabic and Hebrew get their callbacks in the init() functions of their own
// files; the other shapers leave every callback nil.

// ArabicShaper handles Arabic and related scripts.
var ArabicShaper = &OTShaper{
	Name:                    "arabic",
	NormalizationPreference: NormalizationModeAuto,
	ZeroWidthMarks:          ZeroWidthMarksByGDEFLate,
	FallbackPosition:        true,
	// Functions will be set in init()
}

// IndicShaper handles Indic scripts.
var IndicShaper = &OTShaper{
	Name:                    "indic",
	NormalizationPreference: NormalizationModeComposedDiacritics,
	ZeroWidthMarks:          ZeroWidthMarksNone,
	FallbackPosition:        false,              // Indic uses 'dist' not 'kern'
}

// KhmerShaper handles Khmer script.
var KhmerShaper = &OTShaper{
	Name:                    "khmer",
	NormalizationPreference: NormalizationModeComposedDiacritics,
	ZeroWidthMarks:          ZeroWidthMarksNone,
	FallbackPosition:        false,
}

// MyanmarShaper handles Myanmar script.
var MyanmarShaper = &OTShaper{
	Name:                    "myanmar",
	NormalizationPreference: NormalizationModeComposedDiacritics,
	ZeroWidthMarks:          ZeroWidthMarksByGDEFEarly,
	FallbackPosition:        false,
}

// USEShaper handles USE (Universal Shaping Engine) scripts.
var USEShaper = &OTShaper{
	Name:                    "use",
	NormalizationPreference: NormalizationModeComposedDiacritics,
	ZeroWidthMarks:          ZeroWidthMarksByGDEFEarly,
	FallbackPosition:        false,
}

// ThaiShaper handles Thai and Lao scripts.
var ThaiShaper = &OTShaper{
	Name:                    "thai",
	NormalizationPreference: NormalizationModeAuto,
	ZeroWidthMarks:          ZeroWidthMarksByGDEFLate,
	FallbackPosition:        true,
}

// HebrewShaper handles Hebrew script.
var HebrewShaper = &OTShaper{
	Name:                    "hebrew",
	NormalizationPreference: NormalizationModeAuto,
	ZeroWidthMarks:          ZeroWidthMarksByGDEFLate,
	FallbackPosition:        true,
}

// HangulShaper handles Hangul script.
var HangulShaper = &OTShaper{
	Name:                    "hangul",
	NormalizationPreference: NormalizationModeNone,
	ZeroWidthMarks:          ZeroWidthMarksNone,
	FallbackPosition:        true,
}
