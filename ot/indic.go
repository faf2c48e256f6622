package ot

import (
	"fmt"
	"sort"
)

// Debug flag for Indic shaper
var debugIndic = false

// Script tags for Indic scripts
var (
	TagMlym = MakeTag('M', 'l', 'y', 'm') // Malayalam
	TagTaml = MakeTag('T', 'a', 'm', 'l') // Tamil
)

// isHalant checks if a glyph is a halant (virama) and not ligated.
// Uses is_one_of() which returns false for ligated glyphs (line 57).
func isHalant(buf *Buffer, i int) bool {
	if (buf.Info[i].GlyphProps & GlyphPropsLigated) != 0 {
		return false
	}
	return IndicCategory(buf.Info[i].IndicCategory) == ICatH
}

// IndicFeatureIndex is an index into the indicFeatures array and maskArray.
// Must be in the same order as indicFeatures array.
type IndicFeatureIndex int

const (
	indicNukt IndicFeatureIndex = iota
	indicAkhn
	indicRphf
	indicRkrf
	indicPref
	indicBlwf
	indicAbvf
	indicHalf
	indicPstf
	indicVatu
	indicCjct

	indicInit
	indicPres
	indicAbvs
	indicBlws
	indicPsts
	indicHaln

	indicNumFeatures
	indicBasicFeatures = indicInit // Don't forget to update this!
)

// indicFeatureFlags defines how features are applied.
type indicFeatureFlags uint8

const (
	indicFlagGlobal      indicFeatureFlags = 1 << 0 // Feature applies globally (mask is 0, always matches)
	indicFlagManualZWNJ  indicFeatureFlags = 1 << 1
	indicFlagManualZWJ   indicFeatureFlags = 1 << 2
	indicFlagPerSyllable indicFeatureFlags = 1 << 3 // Applied per syllable

	indicFlagManualJoiner indicFeatureFlags = indicFlagManualZWNJ | indicFlagManualZWJ
)

// indicFeature describes an Indic feature.
type indicFeature struct {
	tag   Tag
	flags indicFeatureFlags
}

// indicFeatures is the list of Indic features in application order.
var indicFeatures = [indicNumFeatures]indicFeature{
	// Basic features - applied in order, one at a time, after initial_reordering
	{MakeTag('n', 'u', 'k', 't'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // nukt
	{MakeTag('a', 'k', 'h', 'n'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // akhn
	{MakeTag('r', 'p', 'h', 'f'), indicFlagManualJoiner | indicFlagPerSyllable},                   // rphf
	{MakeTag('r', 'k', 'r', 'f'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // rkrf
	{MakeTag('p', 'r', 'e', 'f'), indicFlagManualJoiner | indicFlagPerSyllable},                   // pref
	{MakeTag('b', 'l', 'w', 'f'), indicFlagManualJoiner | indicFlagPerSyllable},                   // blwf
	{MakeTag('a', 'b', 'v', 'f'), indicFlagManualJoiner | indicFlagPerSyllable},                   // abvf
	{MakeTag('h', 'a', 'l', 'f'), indicFlagManualJoiner | indicFlagPerSyllable},                   // half
	{MakeTag('p', 's', 't', 'f'), indicFlagManualJoiner | indicFlagPerSyllable},                   // pstf
	{MakeTag('v', 'a', 't', 'u'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // vatu
	{MakeTag('c', 'j', 'c', 't'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // cjct

	// Other features - applied all at once, after final_reordering
	{MakeTag('i', 'n', 'i', 't'), indicFlagManualJoiner | indicFlagPerSyllable},                   // init
	{MakeTag('p', 'r', 'e', 's'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // pres
	{MakeTag('a', 'b', 'v', 's'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // abvs
	{MakeTag('b', 'l', 'w', 's'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // blws
	{MakeTag('p', 's', 't', 's'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // psts
	{MakeTag('h', 'a', 'l', 'n'), indicFlagGlobal | indicFlagManualJoiner | indicFlagPerSyllable}, // haln
}

// IndicPlan holds pre-computed data for Indic shaping.
type IndicPlan struct {
	config    *IndicConfig
	isOldSpec bool
	viramaGID GlyphID

	// Feature masks - dynamically generated based on font features
	maskArray [indicNumFeatures]uint32

	// Would-substitute feature testers
	rphf indicWouldSubstitute
	pref indicWouldSubstitute
	blwf indicWouldSubstitute
	pstf indicWouldSubstitute
	vatu indicWouldSubstitute
}

// indicWouldSubstitute holds data for testing if a feature would substitute glyphs.
type indicWouldSubstitute struct {
	gsub        *GSUB
	tag         Tag
	zeroContext bool
}

// wouldSubstitute tests if the feature would substitute the given glyphs.
func (w *indicWouldSubstitute) wouldSubstitute(glyphs []GlyphID) bool {
	if w.gsub == nil {
		return false
	}
	return w.gsub.WouldSubstituteFeature(w.tag, glyphs, w.zeroContext)
}

// newIndicPlan creates and initializes an IndicPlan for the given script and font.
func newIndicPlan(gsub *GSUB, script Tag, config *IndicConfig) *IndicPlan {
	plan := &IndicPlan{
		config:    config,
		viramaGID: 0, // Will be looked up lazily
	}

	// Determine old-spec vs new-spec
	var chosenTag Tag
	if gsub != nil {
		chosenTag = gsub.FindChosenScriptTag(script)
	}
	plan.isOldSpec = config.HasOldSpec && (byte(chosenTag&0xFF) != '2')

	// Use zero-context would_substitute() matching for new-spec of the main
	// Indic scripts, and scripts with one spec only, but not for old-specs.
	zeroContext := !plan.isOldSpec && script != MakeTag('M', 'l', 'y', 'm')

	// Initialize would-substitute testers
	plan.rphf = indicWouldSubstitute{gsub, MakeTag('r', 'p', 'h', 'f'), zeroContext}
	plan.pref = indicWouldSubstitute{gsub, MakeTag('p', 'r', 'e', 'f'), zeroContext}
	plan.blwf = indicWouldSubstitute{gsub, MakeTag('b', 'l', 'w', 'f'), zeroContext}
	plan.pstf = indicWouldSubstitute{gsub, MakeTag('p', 's', 't', 'f'), zeroContext}
	plan.vatu = indicWouldSubstitute{gsub, MakeTag('v', 'a', 't', 'u'), zeroContext}

	// Generate masks dynamically
	// For non-global features, we allocate a unique bit.
	nextBit := uint(8) // Start after Arabic positional masks (bits 1-7)
	for i := IndicFeatureIndex(0); i < indicNumFeatures; i++ {
		if indicFeatures[i].flags&indicFlagGlobal != 0 {
			plan.maskArray[i] = 0 // Global features: mask=0 means always match
		} else {
			plan.maskArray[i] = 1 << nextBit
			nextBit++
		}
	}

	return plan
}

// getIndicPlan returns the IndicPlan for the given script, creating one if necessary.
func (s *Shaper) getIndicPlan(script Tag, config *IndicConfig) *IndicPlan {
	if s.indicPlans == nil {
		s.indicPlans = make(map[Tag]*IndicPlan)
	}
	plan, ok := s.indicPlans[script]
	if !ok {
		plan = newIndicPlan(s.gsub, script, config)
		// Load virama glyph ID for halant recovery in final reordering
		if s.cmap != nil && config.Virama != 0 {
			plan.viramaGID, _ = s.cmap.Lookup(config.Virama)
		}
		s.indicPlans[script] = plan
	}
	return plan
}

//
// This implements the Indic shaping model for scripts like Devanagari, Bengali,
// Tamil, etc. The Indic shaper handles:
// - Syllable detection (via Ragel state machine in indic_machine.go)
// - Character reordering (initial and final)
// - Feature application in specific order

// indicSyllableAccessor implements SyllableAccessor for Indic shaper.
type indicSyllableAccessor struct {
	indicInfo []IndicInfo
}

func (a *indicSyllableAccessor) GetSyllable(i int) uint8 {
	return a.indicInfo[i].Syllable
}

func (a *indicSyllableAccessor) GetCategory(i int) uint8 {
	return uint8(a.indicInfo[i].Category)
}

func (a *indicSyllableAccessor) SetCategory(i int, cat uint8) {
	a.indicInfo[i].Category = IndicCategory(cat)
}

func (a *indicSyllableAccessor) Len() int {
	return len(a.indicInfo)
}

// IndicConfig holds script-specific configuration.
type IndicConfig struct {
	Script Tag

	// Virama codepoint for this script (halant/virama)
	Virama Codepoint

	// HasOldSpec indicates if this script uses old Indic spec shaping
	// (pre-OpenType 1.8 behavior)
	HasOldSpec bool

	// RephPos indicates where reph should be positioned
	RephPos IndicPosition

	// RephMode indicates how reph is formed
	RephMode RephMode

	// BlwfMode indicates how below-forms are handled
	BlwfMode BlwfMode

	// BasePos indicates how to find the base consonant
	BasePos BasePos
}

// RephMode indicates how reph is formed for a script.
type RephMode uint8

const (
	RephModeImplicit RephMode = iota // Reph formed implicitly (Ra+H)
	RephModeExplicit                 // Reph formed explicitly (Ra+H+ZWJ)
	RephModeLogRepha                 // Reph formed by logical repha
)

// BlwfMode indicates how below-forms are handled.
type BlwfMode uint8

const (
	BlwfModePreAndPost BlwfMode = iota // Below-forms before and after base
	BlwfModePostOnly                   // Below-forms only after base
)

// BasePos indicates how to find the base consonant.
type BasePos uint8

const (
	BasePosLastSinhala BasePos = iota // Last consonant (Sinhala-style)
	BasePosLast                       // Last consonant
	BasePosFirst                      // First consonant (for some scripts)
)

// indicConfigs holds per-script configuration.
// Note: has_old_spec is true for all scripts that have dual specs (old and new)
var indicConfigs = map[Tag]IndicConfig{
	MakeTag('D', 'e', 'v', 'a'): { // Devanagari
		Script:     MakeTag('D', 'e', 'v', 'a'),
		Virama:     0x094D,
		HasOldSpec: true,
		RephPos:    IPosBeforePost,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('B', 'e', 'n', 'g'): { // Bengali
		Script:     MakeTag('B', 'e', 'n', 'g'),
		Virama:     0x09CD,
		HasOldSpec: true,
		RephPos:    IPosAfterSub,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('G', 'u', 'r', 'u'): { // Gurmukhi
		Script:     MakeTag('G', 'u', 'r', 'u'),
		Virama:     0x0A4D,
		HasOldSpec: true,
		RephPos:    IPosBeforeSub,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('G', 'u', 'j', 'r'): { // Gujarati
		Script:     MakeTag('G', 'u', 'j', 'r'),
		Virama:     0x0ACD,
		HasOldSpec: true,
		RephPos:    IPosBeforePost,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('O', 'r', 'y', 'a'): { // Oriya
		Script:     MakeTag('O', 'r', 'y', 'a'),
		Virama:     0x0B4D,
		HasOldSpec: true,
		RephPos:    IPosAfterMain,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('T', 'a', 'm', 'l'): { // Tamil
		Script:     MakeTag('T', 'a', 'm', 'l'),
		Virama:     0x0BCD,
		HasOldSpec: true,
		RephPos:    IPosAfterPost,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('T', 'e', 'l', 'u'): { // Telugu
		Script:     MakeTag('T', 'e', 'l', 'u'),
		Virama:     0x0C4D,
		HasOldSpec: true,
		RephPos:    IPosAfterPost,
		RephMode:   RephModeExplicit,
		BlwfMode:   BlwfModePostOnly,
		BasePos:    BasePosLast,
	},
	MakeTag('K', 'n', 'd', 'a'): { // Kannada
		Script:     MakeTag('K', 'n', 'd', 'a'),
		Virama:     0x0CCD,
		HasOldSpec: true,
		RephPos:    IPosAfterPost,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePostOnly,
		BasePos:    BasePosLast,
	},
	MakeTag('M', 'l', 'y', 'm'): { // Malayalam
		Script:     MakeTag('M', 'l', 'y', 'm'),
		Virama:     0x0D4D,
		HasOldSpec: true,
		RephPos:    IPosAfterMain,
		RephMode:   RephModeLogRepha,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	},
	MakeTag('S', 'i', 'n', 'h'): { // Sinhala - no old spec
		Script:     MakeTag('S', 'i', 'n', 'h'),
		Virama:     0x0DCA,
		HasOldSpec: false,
		RephPos:    IPosAfterPost,
		RephMode:   RephModeExplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLastSinhala,
	},
}

// getIndicConfig returns the configuration for a script.
func getIndicConfig(script Tag) *IndicConfig {
	if config, ok := indicConfigs[script]; ok {
		return &config
	}
	// Default config for unknown scripts
	return &IndicConfig{
		Script:     script,
		Virama:     0,
		HasOldSpec: false,
		RephPos:    IPosBeforePost,
		RephMode:   RephModeImplicit,
		BlwfMode:   BlwfModePreAndPost,
		BasePos:    BasePosLast,
	}
}

// isOldSpecIndic returns true if the chosen script tag indicates old-spec shaping.
// indic_plan->is_old_spec = indic_plan->config->has_old_spec && ((plan->map.chosen_script[0] & 0x000000FFu) != '2');
func isOldSpecIndic(config *IndicConfig, chosenScriptTag Tag) bool {
	if !config.HasOldSpec {
		return false
	}
	// Check if the chosen tag ends with '2' (new spec)
	lastByte := byte(chosenScriptTag & 0xFF)
	return lastByte != '2'
}

// IndicShapingInfo holds per-glyph shaping information.
type IndicShapingInfo struct {
	Category IndicCategory
	Position IndicPosition
	Syllable uint8
}

// hasIndicScript returns true if the buffer contains Indic script characters.
func (s *Shaper) hasIndicScript(buf *Buffer) bool {
	for _, info := range buf.Info {
		if isIndicScript(info.Codepoint) {
			return true
		}
	}
	return false
}

// isIndicScript returns true if the codepoint is in an Indic script.
func isIndicScript(cp Codepoint) bool {
	// Devanagari: U+0900-U+097F
	if cp >= 0x0900 && cp <= 0x097F {
		return true
	}
	// Bengali: U+0980-U+09FF
	if cp >= 0x0980 && cp <= 0x09FF {
		return true
	}
	// Gurmukhi: U+0A00-U+0A7F
	if cp >= 0x0A00 && cp <= 0x0A7F {
		return true
	}
	// Gujarati: U+0A80-U+0AFF
	if cp >= 0x0A80 && cp <= 0x0AFF {
		return true
	}
	// Oriya: U+0B00-U+0B7F
	if cp >= 0x0B00 && cp <= 0x0B7F {
		return true
	}
	// Tamil: U+0B80-U+0BFF
	if cp >= 0x0B80 && cp <= 0x0BFF {
		return true
	}
	// Telugu: U+0C00-U+0C7F
	if cp >= 0x0C00 && cp <= 0x0C7F {
		return true
	}
	// Kannada: U+0C80-U+0CFF
	if cp >= 0x0C80 && cp <= 0x0CFF {
		return true
	}
	// Malayalam: U+0D00-U+0D7F
	if cp >= 0x0D00 && cp <= 0x0D7F {
		return true
	}
	// Sinhala: U+0D80-U+0DFF
	if cp >= 0x0D80 && cp <= 0x0DFF {
		return true
	}
	return false
}

// getIndicScriptTag returns the OpenType script tag for a codepoint.
func getIndicScriptTag(cp Codepoint) Tag {
	switch {
	case cp >= 0x0900 && cp <= 0x097F:
		return MakeTag('D', 'e', 'v', 'a')
	case cp >= 0x0980 && cp <= 0x09FF:
		return MakeTag('B', 'e', 'n', 'g')
	case cp >= 0x0A00 && cp <= 0x0A7F:
		return MakeTag('G', 'u', 'r', 'u')
	case cp >= 0x0A80 && cp <= 0x0AFF:
		return MakeTag('G', 'u', 'j', 'r')
	case cp >= 0x0B00 && cp <= 0x0B7F:
		return MakeTag('O', 'r', 'y', 'a')
	case cp >= 0x0B80 && cp <= 0x0BFF:
		return MakeTag('T', 'a', 'm', 'l')
	case cp >= 0x0C00 && cp <= 0x0C7F:
		return MakeTag('T', 'e', 'l', 'u')
	case cp >= 0x0C80 && cp <= 0x0CFF:
		return MakeTag('K', 'n', 'd', 'a')
	case cp >= 0x0D00 && cp <= 0x0D7F:
		return MakeTag('M', 'l', 'y', 'm')
	case cp >= 0x0D80 && cp <= 0x0DFF:
		return MakeTag('S', 'i', 'n', 'h')
	default:
		return 0
	}
}

// detectIndicScript detects the Indic script from buffer content.
func (s *Shaper) detectIndicScript(buf *Buffer) Tag {
	for _, info := range buf.Info {
		if tag := getIndicScriptTag(info.Codepoint); tag != 0 {
			return tag
		}
	}
	return 0
}

// setupIndicProperties sets up Indic shaping properties for each glyph.
func (s *Shaper) setupIndicProperties(buf *Buffer, config *IndicConfig) []IndicInfo {
	indicInfo := make([]IndicInfo, len(buf.Info))

	// Get the virama glyph ID for consonant position detection
	var viramaGlyph GlyphID
	if s.cmap != nil {
		viramaGlyph, _ = s.cmap.Lookup(config.Virama)
	}

	for i := range buf.Info {
		cp := buf.Info[i].Codepoint
		cat, pos := GetIndicCategories(cp)

		// Special handling for ZWJ/ZWNJ
		if cp == 0x200D { // ZWJ
			cat = ICatZWJ
		} else if cp == 0x200C { // ZWNJ
			cat = ICatZWNJ
		} else if cp == 0x25CC { // Dotted Circle
			cat = ICatDOTTEDCIRCLE
		}

		// Malayalam Dot Reph (U+0D4E) is a logical Repha
		if cp == 0x0D4E {
			cat = ICatRepha
			pos = IPosRaToBeReph
		}

		// Check for Ra (for reph formation)
		if cat == ICatC && isRa(cp, config.Script) {
			cat = ICatRa
		}

		// For consonants, determine position using would_substitute
		if cat == ICatC || cat == ICatRa {
			pos = s.consonantPositionFromFace(buf.Info[i].GlyphID, viramaGlyph, config)
		}

		indicInfo[i].Category = cat
		indicInfo[i].Position = pos

		// Also store in GlyphInfo for persistence through GSUB substitutions
		buf.Info[i].IndicCategory = uint8(cat)
		buf.Info[i].IndicPosition = uint8(pos)
	}

	return indicInfo
}

// consonantPositionFromFace determines the position of a consonant based on font features.
//
// This checks if the font has blwf/pstf/pref lookups that would substitute the
// consonant+virama sequence, and returns the appropriate position.
func (s *Shaper) consonantPositionFromFace(consonant, virama GlyphID, config *IndicConfig) IndicPosition {
	if s.gsub == nil || virama == 0 {
		return IPosBaseC
	}

	// Build glyph sequences to test: [virama, consonant, virama]
	// We test both [virama, consonant] and [consonant, virama] orders
	glyphs := []GlyphID{virama, consonant, virama}

	// Check for below-base form (blwf or vatu)
	if s.gsub.WouldSubstituteFeature(tagBlwf, glyphs[0:2], true) ||
		s.gsub.WouldSubstituteFeature(tagBlwf, glyphs[1:3], true) ||
		s.gsub.WouldSubstituteFeature(tagVatu, glyphs[0:2], true) ||
		s.gsub.WouldSubstituteFeature(tagVatu, glyphs[1:3], true) {
		return IPosBelowC
	}

	// Check for post-base form (pstf)
	if s.gsub.WouldSubstituteFeature(tagPstf, glyphs[0:2], true) ||
		s.gsub.WouldSubstituteFeature(tagPstf, glyphs[1:3], true) {
		return IPosPostC
	}

	// Check for pre-base-reordering form (pref)
	if s.gsub.WouldSubstituteFeature(tagPref, glyphs[0:2], true) ||
		s.gsub.WouldSubstituteFeature(tagPref, glyphs[1:3], true) {
		return IPosPostC
	}

	// Default: base consonant
	return IPosBaseC
}

// isRa returns true if the codepoint is the Ra consonant for the given script.
func isRa(cp Codepoint, script Tag) bool {
	switch script {
	case MakeTag('D', 'e', 'v', 'a'):
		return cp == 0x0930 // DEVANAGARI LETTER RA
	case MakeTag('B', 'e', 'n', 'g'):
		return cp == 0x09B0 // BENGALI LETTER RA
	case MakeTag('G', 'u', 'r', 'u'):
		return cp == 0x0A30 // GURMUKHI LETTER RA
	case MakeTag('G', 'u', 'j', 'r'):
		return cp == 0x0AB0 // GUJARATI LETTER RA
	case MakeTag('O', 'r', 'y', 'a'):
		return cp == 0x0B30 // ORIYA LETTER RA
	case MakeTag('T', 'a', 'm', 'l'):
		return cp == 0x0BB0 // TAMIL LETTER RA
	case MakeTag('T', 'e', 'l', 'u'):
		return cp == 0x0C30 // TELUGU LETTER RA
	case MakeTag('K', 'n', 'd', 'a'):
		return cp == 0x0CB0 // KANNADA LETTER RA
	case MakeTag('M', 'l', 'y', 'm'):
		return cp == 0x0D30 // MALAYALAM LETTER RA
	case MakeTag('S', 'i', 'n', 'h'):
		return cp == 0x0DBB // SINHALA LETTER RAYANNA
	}
	return false
}

// findSyllablesIndic finds syllable boundaries in the buffer.
// It calls the Ragel-generated state machine.
func (s *Shaper) findSyllablesIndic(indicInfo []IndicInfo) bool {
	return FindSyllablesIndic(indicInfo)
}

// initialReorderingIndic performs initial reordering before GSUB features.
//
// This function:
// 1. Finds the base consonant in each syllable
// 2. Tags characters with their positions (pre-base, base, post-base, etc.)
// 3. Reorders characters within each syllable
// 4. Sets up feature masks based on position and old-spec/new-spec
func (s *Shaper) initialReorderingIndic(buf *Buffer, indicInfo []IndicInfo, config *IndicConfig, indicPlan *IndicPlan) {
	if len(buf.Info) == 0 {
		return
	}

	// Process each syllable
	start := 0
	for start < len(buf.Info) {
		// Find syllable end
		syllable := indicInfo[start].Syllable
		end := start + 1
		for end < len(buf.Info) && indicInfo[end].Syllable == syllable {
			end++
		}

		// Get syllable type
		syllableType := IndicSyllableType(syllable & 0x0F)

		// Reorder based on syllable type
		switch syllableType {
		case IndicConsonantSyllable:
			s.initialReorderingConsonantSyllable(buf, indicInfo, start, end, config, indicPlan)
		case IndicVowelSyllable:
			s.initialReorderingVowelSyllable(buf, indicInfo, start, end, config)
		case IndicStandaloneCluster:
			s.initialReorderingStandaloneCluster(buf, indicInfo, start, end, config, indicPlan)
		}

		start = end
	}
}

// initialReorderingConsonantSyllable reorders a consonant syllable.
func (s *Shaper) initialReorderingConsonantSyllable(buf *Buffer, indicInfo []IndicInfo, start, end int, config *IndicConfig, indicPlan *IndicPlan) {
	// Kannada compatibility: Ra+H+ZWJ → Ra+ZWJ+H
	if config.Script == MakeTag('K', 'n', 'd', 'a') &&
		start+3 <= end &&
		indicInfo[start].Category == ICatRa &&
		indicInfo[start+1].Category == ICatH &&
		indicInfo[start+2].Category == ICatZWJ {
		buf.MergeClusters(start+1, start+3)
		buf.Info[start+1], buf.Info[start+2] = buf.Info[start+2], buf.Info[start+1]
		indicInfo[start+1], indicInfo[start+2] = indicInfo[start+2], indicInfo[start+1]
	}

	// Step 1: Find base consonant
	base := s.findBaseConsonant(buf, indicInfo, start, end, config, indicPlan)
	if base == start && indicInfo[start].Category == ICatRepha {
		// Repha at start - base is the next consonant
		for base = start + 1; base < end; base++ {
			if IsIndicConsonant(indicInfo[base].Category) {
				break
			}
		}
	}

	// Set base position
	if base < end {
		indicInfo[base].Position = IPosBaseC
		buf.Info[base].IndicPosition = uint8(IPosBaseC)
	}

	// Step 2: Classify consonant positions (pre-base clamping)
	s.classifyIndicConsonantPositions(buf, indicInfo, start, end, base, config)

	// Step 3: Handle reph (Ra+H at start) - MUST be before attachMiscMarks!
	s.handleReph(buf, indicInfo, start, end, base, config)

	// Step 3b: Attach misc marks to previous char (position inheritance)
	s.attachMiscMarks(buf, indicInfo, start, end, base, config)

	// Step 4: Pre-base matras - DON'T reorder here!
	// and then ACTUALLY reordered in final_reordering AFTER pref-blocking check.
	// The stable_sort puts them in position order, but doesn't physically move them.
	// Moving them here would prevent correct pref-blocking behavior.

	// Note: Reph keeps IPosRaToBeReph during initial reordering.
	// The actual reph repositioning happens in final reordering (moveReph).

	// to maintain stability (original order for equal positions).
	syllable := buf.Info[start].Syllable
	base = s.stableSortIndicSyllable(buf, indicInfo, start, end)

	// For old-spec fonts, move Halant after the last consonant.
	// This is critical for correct ligature formation in old-spec fonts.
	if indicPlan.isOldSpec {
		disallowDoubleHalants := config.Script == MakeTag('K', 'n', 'd', 'a') // Kannada
		for i := base + 1; i < end; i++ {
			if indicInfo[i].Category == ICatH {
				// Find the last consonant (or halant if disallowed)
				j := end - 1
				for j > i {
					if IsIndicConsonant(indicInfo[j].Category) ||
						(disallowDoubleHalants && indicInfo[j].Category == ICatH) {
						break
					}
					j--
				}
				// Move halant to after last consonant if needed
				if indicInfo[j].Category != ICatH && j > i {
					// Save the halant
					tmpInfo := buf.Info[i]
					tmpIndicInfo := indicInfo[i]
					// Shift elements
					copy(buf.Info[i:j], buf.Info[i+1:j+1])
					copy(indicInfo[i:j], indicInfo[i+1:j+1])
					// Place halant at new position
					buf.Info[j] = tmpInfo
					indicInfo[j] = tmpIndicInfo
				}
				break
			}
		}
	}

	// For old-spec (or very long syllables), merge all clusters from base to end.
	// For new-spec, track glyph movements and merge accordingly.
	if indicPlan.isOldSpec || (end-start) > 127 {
		if base < end {
			buf.MergeClusters(base, end)
		}
	} else {
		// New-spec: track glyph movements using syllable field (which contains original position)
		for i := base; i < end; i++ {
			if buf.Info[i].Syllable != 255 {
				minPos := i
				maxPos := i
				j := start + int(buf.Info[i].Syllable)
				for j != i {
					if j < minPos {
						minPos = j
					}
					if j > maxPos {
						maxPos = j
					}
					next := start + int(buf.Info[j].Syllable)
					buf.Info[j].Syllable = 255 // Mark as processed
					j = next
				}
				// Merge clusters from max(base, minPos) to maxPos+1
				mergeStart := base
				if minPos > base {
					mergeStart = minPos
				}
				buf.MergeClusters(mergeStart, maxPos+1)
			}
		}
	}

	for i := start; i < end; i++ {
		buf.Info[i].Syllable = syllable
	}

	// Reph mask - only for glyphs with RA_TO_BECOME_REPH position
	for i := start; i < end && indicInfo[i].Position == IPosRaToBeReph; i++ {
		buf.Info[i].Mask |= indicPlan.maskArray[indicRphf]
	}
	// Pre-base masks
	preBaseMask := indicPlan.maskArray[indicHalf]
	//   mask |= indic_plan->mask_array[INDIC_BLWF];
	if !indicPlan.isOldSpec && config.BlwfMode == BlwfModePreAndPost {
		preBaseMask |= indicPlan.maskArray[indicBlwf]
	}
	for i := start; i < base; i++ {
		buf.Info[i].Mask |= preBaseMask
	}

	// Post-base always gets BLWF | ABVF | PSTF
	postBaseMask := indicPlan.maskArray[indicBlwf] | indicPlan.maskArray[indicAbvf] | indicPlan.maskArray[indicPstf]
	for i := base + 1; i < end; i++ {
		buf.Info[i].Mask |= postBaseMask
	}

	// "If the syllable starts with Ra + Halant [...] and has more than one
	// consonant, the first Ra is treated like a below-base consonant."
	// Ra+H gets BLWF mask unless followed by ZWJ
	if !indicPlan.isOldSpec && config.BlwfMode == BlwfModePreAndPost {
		for i := start; i+1 < base; i++ {
			if indicInfo[i].Category == ICatRa &&
				indicInfo[i+1].Category == ICatH &&
				(i+2 == base || indicInfo[i+2].Category != ICatZWJ) {
				buf.Info[i].Mask |= indicPlan.maskArray[indicBlwf]
				buf.Info[i+1].Mask |= indicPlan.maskArray[indicBlwf]
			}
		}
	}

	// Find a Halant,Ra sequence after base and mark it for pre-base-reordering processing.
	prefLen := 2
	if indicPlan.maskArray[indicPref] != 0 && base+prefLen < end {
		for i := base + 1; i+prefLen-1 < end; i++ {
			glyphs := []GlyphID{buf.Info[i].GlyphID, buf.Info[i+1].GlyphID}
			if indicPlan.pref.wouldSubstitute(glyphs) {
				for j := 0; j < prefLen; j++ {
					buf.Info[i+j].Mask |= indicPlan.maskArray[indicPref]
				}
				break
			}
		}
	}

	// Step 7: Copy positions to GlyphInfo for persistence through GSUB
	// We do the same by copying to buf.Info[i].IndicPosition.
	for i := start; i < end; i++ {
		buf.Info[i].IndicCategory = uint8(indicInfo[i].Category)
		buf.Info[i].IndicPosition = uint8(indicInfo[i].Position)
	}
}

// firstConsonant scans [start,end) for the first consonant, optionally
// excluding repha (a leading Ra+H already set aside as its own glyph
// category). Returns end if none is found.
func firstConsonant(indicInfo []IndicInfo, start, end int, excludeRepha bool) int {
	for i := start; i < end; i++ {
		if !IsIndicConsonant(indicInfo[i].Category) {
			continue
		}
		if excludeRepha && indicInfo[i].Category == ICatRepha {
			continue
		}
		return i
	}
	return end
}

// rephSearchLimit decides where the backward base-consonant search may
// stop on the left: a recognized reph (superscript Ra form) at the
// syllable start is excluded from candidacy, since Ra itself is never
// a valid base once it has been pulled out to become reph.
func (s *Shaper) rephSearchLimit(buf *Buffer, indicInfo []IndicInfo, start, end int, config *IndicConfig, indicPlan *IndicPlan) (limit int, hasReph bool) {
	if config.RephMode == RephModeLogRepha && indicInfo[start].Category == ICatRepha {
		// Malayalam dot reph: limit sits right after the repha glyph
		// (plus any joiners glued to it).
		limit = start + 1
		for limit < end && isIndicJoiner(indicInfo[limit].Category) {
			limit++
		}
		return limit, true
	}

	if indicPlan.maskArray[indicRphf] == 0 || start+2 >= end {
		return start, false
	}
	if indicInfo[start].Category != ICatRa || indicInfo[start+1].Category != ICatH {
		return start, false
	}
	implicitCandidate := config.RephMode == RephModeImplicit && !isIndicJoiner(indicInfo[start+2].Category)
	explicitCandidate := config.RephMode == RephModeExplicit && indicInfo[start+2].Category == ICatZWJ
	if !implicitCandidate && !explicitCandidate {
		return start, false
	}

	// Ra+H at the syllable start is only reph if the font's rphf
	// feature would actually substitute it — otherwise it is an
	// ordinary consonant cluster and stays in the base search.
	pair := []GlyphID{buf.Info[start].GlyphID, buf.Info[start+1].GlyphID}
	triple := []GlyphID{buf.Info[start].GlyphID, buf.Info[start+1].GlyphID, buf.Info[start+2].GlyphID}
	formsReph := indicPlan.rphf.wouldSubstitute(pair) ||
		(config.RephMode == RephModeExplicit && indicPlan.rphf.wouldSubstitute(triple))
	if !formsReph {
		return start, false
	}

	limit = start + 2
	if config.RephMode == RephModeExplicit {
		limit = start + 3
	}
	for limit < end && isIndicJoiner(indicInfo[limit].Category) {
		limit++
	}
	return limit, true
}

// backwardBaseSearch implements spec step 2 of initial reordering: walk
// from the syllable end towards limit, stopping at the first consonant
// that carries neither a below-base nor a (non-preceded-by-below) post-
// base form. A ZWJ directly after a Halant halts the search early to
// force an explicit half form on the consonant before it.
func backwardBaseSearch(indicInfo []IndicInfo, start, end, limit int) int {
	base := end
	seenBelow := false
	for i := end - 1; i >= limit; i-- {
		cat := indicInfo[i].Category

		if !IsIndicConsonant(cat) {
			if i > start && cat == ICatZWJ && indicInfo[i-1].Category == ICatH {
				break
			}
			continue
		}

		pos := indicInfo[i].Position
		base = i
		if pos != IPosBelowC && (pos != IPosPostC || seenBelow) {
			break
		}
		if pos == IPosBelowC {
			seenBelow = true
		}
	}
	return base
}

// findBaseConsonant locates the base consonant of a syllable per spec.md
// §4.8 step 2: Sinhala walks forward for the first consonant, everything
// else walks backward from the syllable end, skipping over any leading
// reph candidate.
func (s *Shaper) findBaseConsonant(buf *Buffer, indicInfo []IndicInfo, start, end int, config *IndicConfig, indicPlan *IndicPlan) int {
	if config.BasePos == BasePosFirst {
		return firstConsonant(indicInfo, start, end, true)
	}

	limit, hasReph := s.rephSearchLimit(buf, indicInfo, start, end, config, indicPlan)
	base := backwardBaseSearch(indicInfo, start, end, limit)

	if base == end && hasReph {
		// Reph was detected but nothing else in the syllable is a
		// usable base: reph does not form, fall back to any consonant.
		if c := firstConsonant(indicInfo, start, end, false); c != end {
			return c
		}
	}
	if base == end {
		return firstConsonant(indicInfo, start, end, true)
	}
	return base
}

// isIndicJoiner returns true if the category is ZWJ or ZWNJ.
func isIndicJoiner(cat IndicCategory) bool {
	return cat == ICatZWJ || cat == ICatZWNJ
}

// classifyIndicConsonantPositions classifies consonant positions in a syllable (pre-base clamping).
func (s *Shaper) classifyIndicConsonantPositions(buf *Buffer, indicInfo []IndicInfo, start, end, base int, config *IndicConfig) {
	// Pre-base consonants (before base) get IPosPreC
	for i := start; i < base; i++ {
		cat := indicInfo[i].Category
		pos := indicInfo[i].Position
		if IsIndicConsonant(cat) {
			if pos > IPosPreC {
				indicInfo[i].Position = IPosPreC
			}
		} else if cat == ICatM {
			indicInfo[i].Position = IPosPreM
		}
	}
}

// attachMiscMarks attaches misc marks to previous char and handles post-base ownership.
func (s *Shaper) attachMiscMarks(buf *Buffer, indicInfo []IndicInfo, start, end, base int, config *IndicConfig) {
	// Attach misc marks to previous char to move with them
	lastPos := IPosStart
	for i := start; i < end; i++ {
		cat := indicInfo[i].Category
		pos := indicInfo[i].Position

		// Joiners, Nukta, RS, CM, Halant get position of previous char
		if cat == ICatZWJ || cat == ICatZWNJ || cat == ICatN || cat == ICatRS || cat == ICatCM || cat == ICatH {
			indicInfo[i].Position = lastPos
			// Special case: Halant at pre-base matra position
			if cat == ICatH && indicInfo[i].Position == IPosPreM {
				for j := i; j > start; j-- {
					if indicInfo[j-1].Position != IPosPreM {
						indicInfo[i].Position = indicInfo[j-1].Position
						break
					}
				}
			}
		} else if pos != IPosSMVD {
			// MPst after SM: copy position
			if cat == ICatMPst && i > start && indicInfo[i-1].Category == ICatSM {
				indicInfo[i-1].Position = pos
			}
			lastPos = pos
		}
	}

	// For post-base consonants let them own anything before them
	// since the last consonant or matra.
	// NOTE: This does NOT change consonant positions! Only marks between consonants.
	last := base
	for i := base + 1; i < end; i++ {
		cat := indicInfo[i].Category
		if IsIndicConsonant(cat) {
			// Update marks between last and i to have this consonant's position
			for j := last + 1; j < i; j++ {
				if indicInfo[j].Position < IPosSMVD {
					indicInfo[j].Position = indicInfo[i].Position
				}
			}
			last = i
		} else if cat == ICatM || cat == ICatMPst {
			last = i
		}
	}

	// Note: No additional matra position override needed here.
	// Matra positions come directly from the indic table (generated with
	// indic_matra_position mapping from gen-indic-table.py).
}

// stableSortIndicSyllable sorts a syllable by indic_position using stable sort.
//
// This is critical for correct Indic reordering. Characters are sorted by their
// indic_position value, with equal positions maintaining their original order.
// Returns the new index of the base consonant after sorting.
func (s *Shaper) stableSortIndicSyllable(buf *Buffer, indicInfo []IndicInfo, start, end int) int {
	// DEBUG
	if debugIndic {
		fmt.Printf("stableSortIndicSyllable: start=%d end=%d\n", start, end)
		for i := start; i < end; i++ {
			fmt.Printf("  BEFORE [%d]: gid=%d cp=U+%04X pos=%d\n", i, buf.Info[i].GlyphID, buf.Info[i].Codepoint, indicInfo[i].Position)
		}
	}

	if end-start <= 1 {
		// Nothing to sort, but still set relative position for cluster tracking
		for i := start; i < end; i++ {
			buf.Info[i].Syllable = uint8(i - start)
			if indicInfo[i].Position == IPosBaseC {
				return i
			}
		}
		return end
	}

	// Note: The original syllable is saved by the caller (initialReorderingConsonantSyllable)
	n := end - start
	for i := start; i < end; i++ {
		buf.Info[i].Syllable = uint8(i - start)
	}

	// We use a slice of indices and sort that
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		indices[i] = i
	}

	// compare_indic_order returns: (int) a - (int) b
	// So we sort ascending by position value
	sort.SliceStable(indices, func(i, j int) bool {
		posI := indicInfo[start+indices[i]].Position
		posJ := indicInfo[start+indices[j]].Position
		return posI < posJ
	})

	// Apply the permutation
	// Create temporary copies
	tempInfo := make([]GlyphInfo, n)
	tempIndicInfo := make([]IndicInfo, n)
	for i := 0; i < n; i++ {
		tempInfo[i] = buf.Info[start+i]
		tempIndicInfo[i] = indicInfo[start+i]
	}

	// Apply sorted order
	for i := 0; i < n; i++ {
		buf.Info[start+i] = tempInfo[indices[i]]
		indicInfo[start+i] = tempIndicInfo[indices[i]]
	}

	// Also reorder Pos if allocated
	if len(buf.Pos) >= end {
		tempPos := make([]GlyphPos, n)
		for i := 0; i < n; i++ {
			tempPos[i] = buf.Pos[start+i]
		}
		for i := 0; i < n; i++ {
			buf.Pos[start+i] = tempPos[indices[i]]
		}
	}

	// DEBUG
	if debugIndic {
		fmt.Printf("  AFTER sort:\n")
		for i := start; i < end; i++ {
			fmt.Printf("    [%d]: gid=%d cp=U+%04X pos=%d syllable(origPos)=%d\n", i, buf.Info[i].GlyphID, buf.Info[i].Codepoint, indicInfo[i].Position, buf.Info[i].Syllable)
		}
	}

	base := end
	for i := start; i < end; i++ {
		if indicInfo[i].Position == IPosBaseC {
			base = i
			break
		}
	}

	// Find first and last left-matra
	firstLeftMatra := end
	lastLeftMatra := end
	for i := start; i < end; i++ {
		if indicInfo[i].Position == IPosPreM {
			if firstLeftMatra == end {
				firstLeftMatra = i
			}
			lastLeftMatra = i
		}
	}

	// Reverse left-matra range if there are multiple
	if firstLeftMatra < lastLeftMatra {
		buf.ReverseRange(firstLeftMatra, lastLeftMatra+1)
		// Also reverse indicInfo to keep in sync
		for i, j := firstLeftMatra, lastLeftMatra; i < j; i, j = i+1, j-1 {
			indicInfo[i], indicInfo[j] = indicInfo[j], indicInfo[i]
		}

		// Reverse back nuktas etc. within matra groups
		i := firstLeftMatra
		for j := i; j <= lastLeftMatra; j++ {
			cat := indicInfo[j].Category
			if cat == ICatM || cat == ICatMPst {
				if j > i {
					buf.ReverseRange(i, j+1)
					for ii, jj := i, j; ii < jj; ii, jj = ii+1, jj-1 {
						indicInfo[ii], indicInfo[jj] = indicInfo[jj], indicInfo[ii]
					}
				}
				i = j + 1
			}
		}
	}

	// Note: Cluster merging and syllable restore happen in the caller
	// (initialReorderingConsonantSyllable) which has access to indicPlan
	// to determine old-spec vs new-spec behavior.
	// The syllable field still contains the original position for tracking.

	return base
}

// handleReph handles reph formation (Ra+H at start of syllable).
func (s *Shaper) handleReph(buf *Buffer, indicInfo []IndicInfo, start, end, base int, config *IndicConfig) {
	if start >= end {
		return
	}

	// For LOG_REPHA mode (Malayalam), the repha is already encoded as U+0D4E
	if config.RephMode == RephModeLogRepha {
		if indicInfo[start].Category == ICatRepha {
			indicInfo[start].Position = IPosRaToBeReph
		}
		return
	}

	// Check for Ra+H at start
	if indicInfo[start].Category != ICatRa {
		return
	}
	if start+1 >= end || indicInfo[start+1].Category != ICatH {
		return
	}

	// For explicit reph mode, need ZWJ after halant
	if config.RephMode == RephModeExplicit {
		if start+2 >= end || indicInfo[start+2].Category != ICatZWJ {
			return
		}
	}

	// For implicit reph mode, there should be no joiner after halant
	if config.RephMode == RephModeImplicit {
		if start+2 < end && isIndicJoiner(indicInfo[start+2].Category) {
			return
		}
	}

	// Mark Ra as reph
	indicInfo[start].Position = IPosRaToBeReph
}

// reorderPreBaseMatras reorders pre-base matras to their correct position.
func (s *Shaper) reorderPreBaseMatras(buf *Buffer, indicInfo []IndicInfo, start, end, base int) {
	// Find pre-base matras after base and move them to the start of the syllable.
	// This implements the visual reordering where pre-base matras appear
	// visually to the left of the base consonant.

	// Find insertion point (start of syllable)
	insertPoint := start

	// Process matras from the end to avoid index shifting issues
	for i := end - 1; i > base; i-- {
		if indicInfo[i].Position == IPosPreM {
			// Move this matra to the insertion point
			s.moveGlyph(buf, indicInfo, i, insertPoint)
			// After moving, the insertion point stays the same
			// (the matra was moved to insertPoint, pushing others right)
		}
	}
}

// initialReorderingVowelSyllable reorders a vowel syllable.
func (s *Shaper) initialReorderingVowelSyllable(buf *Buffer, indicInfo []IndicInfo, start, end int, config *IndicConfig) {
	// Vowel syllables don't have a base consonant to reorder around
	// Just classify positions
	for i := start; i < end; i++ {
		cat := indicInfo[i].Category
		if cat == ICatSM || cat == ICatSMPst {
			indicInfo[i].Position = IPosSMVD
		}
		if cat == ICatA {
			indicInfo[i].Position = IPosSMVD
		}
	}
}

// initialReorderingStandaloneCluster reorders a standalone cluster.
func (s *Shaper) initialReorderingStandaloneCluster(buf *Buffer, indicInfo []IndicInfo, start, end int, config *IndicConfig, indicPlan *IndicPlan) {
	// Standalone clusters (with placeholder/dotted circle) are similar to consonant syllables
	s.initialReorderingConsonantSyllable(buf, indicInfo, start, end, config, indicPlan)
}

// finalReorderingIndic performs final reordering after GSUB features.
func (s *Shaper) finalReorderingIndic(buf *Buffer, indicInfo []IndicInfo, config *IndicConfig, indicPlan *IndicPlan) {
	// Final reordering handles:
	// 1. Actual reph repositioning (after rphf feature has been applied)
	// 2. Pre-base-reordering consonant repositioning
	// 3. Pre-base matra repositioning

	// Process each syllable
	// Use buf.Info syllable data (survives GSUB) instead of indicInfo (stale after GSUB)
	start := 0
	for start < len(buf.Info) {
		syllable := buf.Info[start].Syllable
		end := start + 1
		for end < len(buf.Info) && buf.Info[end].Syllable == syllable {
			end++
		}

		syllableType := IndicSyllableType(syllable & 0x0F)

		if syllableType == IndicConsonantSyllable || syllableType == IndicStandaloneCluster {
			s.finalReorderingSyllable(buf, indicInfo, start, end, config, indicPlan)
		}

		start = end
	}
}

// finalReorderingSyllable performs final reordering for a single syllable.
func (s *Shaper) finalReorderingSyllable(buf *Buffer, indicInfo []IndicInfo, start, end int, config *IndicConfig, indicPlan *IndicPlan) {
	// Recover halant category for virama glyphs that were ligated then multiplied.
	// After ligation + multiple substitution, the virama glyph may have lost its
	// I_Cat(H) category. If it still has the virama glyph ID and is both ligated
	// and multiplied, restore the halant category and clear those flags so
	// is_halant() will return true.
	viramaGlyph := indicPlan.viramaGID
	if viramaGlyph != 0 {
		for i := start; i < end; i++ {
			if buf.Info[i].GlyphID == viramaGlyph &&
				buf.Info[i].IsLigated() &&
				buf.Info[i].IsMultiplied() {
				buf.Info[i].IndicCategory = uint8(ICatH)
				buf.Info[i].GlyphProps &^= GlyphPropsLigated | GlyphPropsMultiplied
			}
		}
	}

	if debugIndic {
		fmt.Printf("finalReorderingSyllable [%d,%d):\n", start, end)
		for i := start; i < end; i++ {
			fmt.Printf("  [%d] gid=%d pos=%d cat=%d mask=0x%X props=0x%X ligated=%v multiplied=%v subst=%v\n",
				i, buf.Info[i].GlyphID, buf.Info[i].IndicPosition, buf.Info[i].IndicCategory,
				buf.Info[i].Mask, buf.Info[i].GlyphProps,
				buf.Info[i].IsLigated(), buf.Info[i].IsMultiplied(),
				(buf.Info[i].GlyphProps&GlyphPropsSubstituted) != 0)
		}
	}
	tryPref := indicPlan.maskArray[indicPref] != 0

	// Find base consonant with pref-blocking logic
	base := -1
	for i := start; i < end; i++ {
		if buf.Info[i].IndicPosition >= uint8(IPosBaseC) {
			base = i

			// If a glyph has the pref mask but didn't actually get substituted/ligated,
			// then it was a pref candidate that didn't form - adjust base accordingly.
			if tryPref && base+1 < end {
				for j := base + 1; j < end; j++ {
					if (buf.Info[j].Mask & indicPlan.maskArray[indicPref]) != 0 {
						//                _hb_glyph_info_ligated_and_didnt_multiply(&info[i])))
						// Check if pref actually formed (substituted AND ligated AND not multiplied)
						ligatedAndDidntMultiply := (buf.Info[j].GlyphProps&GlyphPropsLigated) != 0 &&
							(buf.Info[j].GlyphProps&GlyphPropsMultiplied) == 0
						substituted := (buf.Info[j].GlyphProps & GlyphPropsSubstituted) != 0

						if !(substituted && ligatedAndDidntMultiply) {
							// Ok, this was a 'pref' candidate but didn't form any.
							// Base is around here...
							base = j
							for base < end && isHalant(buf, base) {
								base++
							}
							if base < end {
								buf.Info[base].IndicPosition = uint8(IPosBaseC)
							}
							tryPref = false
						}
						break
					}
				}
				if base == end {
					break
				}
			}

			// For Malayalam, skip over unformed below- (but NOT post-) forms.
			if buf.Script == TagMlym {
				for i := base + 1; i < end; {
					// Skip joiners
					for i < end && isIndicJoiner(IndicCategory(buf.Info[i].IndicCategory)) {
						i++
					}
					if i == end || !isHalant(buf, i) {
						break
					}
					i++ // Skip halant
					// Skip joiners
					for i < end && isIndicJoiner(IndicCategory(buf.Info[i].IndicCategory)) {
						i++
					}
					if i < end && IsIndicConsonant(IndicCategory(buf.Info[i].IndicCategory)) &&
						buf.Info[i].IndicPosition == uint8(IPosBelowC) {
						base = i
						buf.Info[base].IndicPosition = uint8(IPosBaseC)
					}
				}
			}

			if start < base && buf.Info[base].IndicPosition > uint8(IPosBaseC) {
				base--
			}
			break
		}
	}

	if base < 0 {
		base = end
	}

	if base == end && start < base {
		if (buf.Info[base-1].GlyphProps & GlyphPropsZWJ) != 0 {
			base--
		}
	}
	if base < end {
		for start < base {
			cat := IndicCategory(buf.Info[base].IndicCategory)
			if cat != ICatN && !isHalant(buf, base) {
				break
			}
			base--
		}
	}

	// Reorder pre-base matras (move them before the base cluster)
	_ = s.movePreBaseMatras(buf, indicInfo, start, end, base)

	// Reorder reph to its final position
	base = s.moveReph(buf, indicInfo, start, end, base, config)

	// Reorder pre-base-reordering consonants (pref)
	if tryPref && base+1 < end {
		for i := base + 1; i < end; i++ {
			if (buf.Info[i].Mask & indicPlan.maskArray[indicPref]) != 0 {
				// Only reorder if pref actually ligated
				ligatedAndDidntMultiply := (buf.Info[i].GlyphProps&GlyphPropsLigated) != 0 &&
					(buf.Info[i].GlyphProps&GlyphPropsMultiplied) == 0

				if ligatedAndDidntMultiply {
					// Find target position (same logic as pre-base matra)
					newPos := base
					// Malayalam / Tamil don't have half forms
					if buf.Script != TagMlym && buf.Script != TagTaml {
						for newPos > start {
							prevCat := IndicCategory(buf.Info[newPos-1].IndicCategory)
							if prevCat != ICatM && prevCat != ICatMPst && !isHalant(buf, newPos-1) {
								break
							}
							newPos--
						}
					}

					// If halant before new_pos, check for joiners
					if newPos > start && isHalant(buf, newPos-1) {
						if newPos < end && isIndicJoiner(IndicCategory(buf.Info[newPos].IndicCategory)) {
							newPos++
						}
					}

					// Move pref glyph from i to newPos
					if newPos < i {
						oldPos := i
						buf.MergeClusters(newPos, oldPos+1)
						tmp := buf.Info[oldPos]
						tmpPos := buf.Pos[oldPos]
						copy(buf.Info[newPos+1:oldPos+1], buf.Info[newPos:oldPos])
						copy(buf.Pos[newPos+1:oldPos+1], buf.Pos[newPos:oldPos])
						buf.Info[newPos] = tmp
						buf.Pos[newPos] = tmpPos

						if newPos <= base && base < oldPos {
							base++
						}
					}
				}
				break
			}
		}
	}

	// Merge clusters in the syllable, respecting ZWNJ boundaries
	s.mergeIndicClusters(buf, indicInfo, start, end)
}

// hasZWJ checks if a syllable contains a ZWJ (Zero Width Joiner).
// Uses GlyphPropsZWJ flag which is preserved even after substitution
// (when Codepoint might have changed to 0 or another value).
func hasZWJ(buf *Buffer, start, end int) bool {
	for i := start; i < end; i++ {
		// Check GlyphPropsZWJ flag (preserved through substitution)
		// instead of Codepoint which may have changed
		if (buf.Info[i].GlyphProps & GlyphPropsZWJ) != 0 {
			return true
		}
	}
	return false
}

// mergeIndicClusters merges clusters in a syllable, respecting joiner boundaries.
//
// - If syllable has NO joiners (ZWJ/ZWNJ): NO automatic cluster merging
// - If syllable contains only ZWJ (no ZWNJ): merge entire syllable to minimum cluster
// - If syllable contains ZWNJ: split at ZWNJ positions
//   - Before ZWNJ: merge if there's a ZWJ, otherwise keep original
//   - ZWNJ itself: keeps its own cluster
//
// ZWJ merges BACKWARDS to the segment start or previous joiner.
// ZWNJ creates cluster boundaries.
// Uses GlyphPropsZWNJ/GlyphPropsZWJ flags which are preserved even after substitution.
func (s *Shaper) mergeIndicClusters(buf *Buffer, indicInfo []IndicInfo, start, end int) {
	// Check for ZWNJ - only ZWNJ creates cluster boundaries
	// Use GlyphPropsZWNJ flag instead of Codepoint (which may have changed)
	hasZWNJ := false
	for i := start; i < end; i++ {
		if (buf.Info[i].GlyphProps & GlyphPropsZWNJ) != 0 {
			hasZWNJ = true
			break
		}
	}

	if !hasZWNJ && !hasZWJ(buf, start, end) {
		// No ZWJ/ZWNJ - no cluster merging needed
		// not automatically for all syllables
		return
	}

	// If there's a ZWJ but no ZWNJ, merge the entire syllable
	// (ZWJ requests joining and cluster merging)
	if !hasZWNJ {
		buf.MergeClusters(start, end)
		return
	}

	// Process joiners: ZWJ merges backwards to segment start, ZWNJ creates boundaries
	// A segment is defined as: characters between joiners (or syllable start/end)
	// - ZWJ at end of segment: merge entire segment
	// - ZWNJ at end of segment: no merge, creates boundary
	//
	// Example: TTA, VIRAMA, ZWJ, TTA, VIRAMA, ZWNJ
	//          Segment 1: [TTA, VIRAMA, ZWJ] -> merge to cluster 0
	//          Segment 2: [TTA, VIRAMA, ZWNJ] -> no merge, clusters 3, 4, 5
	segStart := start
	lastJoinerWasZWJ := false
	for i := start; i < end; i++ {
		// Use GlyphProps flags instead of Codepoint
		isZWJ := (buf.Info[i].GlyphProps & GlyphPropsZWJ) != 0
		isZWNJ := (buf.Info[i].GlyphProps & GlyphPropsZWNJ) != 0
		if isZWJ {
			// ZWJ merges backwards from segStart to ZWJ position (inclusive)
			buf.MergeClusters(segStart, i+1)
			// New segment starts after ZWJ
			segStart = i + 1
			lastJoinerWasZWJ = true
		} else if isZWNJ {
			// ZWNJ creates a boundary - no merge, new segment starts after it
			segStart = i + 1
			lastJoinerWasZWJ = false
		}
	}

	// Handle remaining segment after last joiner
	// If last joiner was ZWJ, merge remaining elements with ZWJ's cluster
	if lastJoinerWasZWJ && segStart < end {
		// Find the cluster of the ZWJ (which is at segStart-1)
		// and merge the remaining elements with it
		buf.MergeClusters(segStart-1, end)
	}
}

// mergeSyllableClusters sets all glyphs in a syllable to the minimum cluster value.
func (s *Shaper) mergeSyllableClusters(buf *Buffer, start, end int) {
	if start >= end {
		return
	}

	// Find minimum cluster value in the syllable
	minCluster := buf.Info[start].Cluster
	for i := start + 1; i < end; i++ {
		if buf.Info[i].Cluster < minCluster {
			minCluster = buf.Info[i].Cluster
		}
	}

	// Set all glyphs to the minimum cluster
	for i := start; i < end; i++ {
		buf.Info[i].Cluster = minCluster
	}
}

// movePreBaseMatras moves pre-base matras to their correct position.
// Returns true if any matras were moved.
func (s *Shaper) movePreBaseMatras(buf *Buffer, indicInfo []IndicInfo, start, end, base int) bool {
	// Reorder pre-base matra like best Indic shaper in town!
	// This is O(n^2), but there are only so many matras...

	// Otherwise there can't be any pre-base matra characters.
	if !(start+1 < end && start < base) {
		return false
	}

	// If we lost track of base, alas, position before last thingy.
	newPos := base - 1
	if base == end {
		newPos = base - 2
	}

	// Malayalam / Tamil do not have "half" forms or explicit virama forms.
	// The glyphs formed by 'half' are Chillus or ligated explicit viramas.
	// We want to position matra after them.
	if buf.Script != TagMlym && buf.Script != TagTaml {
		// For other scripts, search backwards for Halant/Matra/MPst
		for newPos > start {
			cat := IndicCategory(buf.Info[newPos].IndicCategory)
			if cat != ICatM && cat != ICatMPst && !isHalant(buf, newPos) {
				break
			}
			newPos--
		}

		// If we found a Halant that doesn't belong to a pre-base matra
		if isHalant(buf, newPos) && buf.Info[newPos].IndicPosition != uint8(IPosPreM) {
			if newPos+1 < end {
				// If ZWJ follows this halant, matra is NOT repositioned after this halant.
				if IndicCategory(buf.Info[newPos+1].IndicCategory) == ICatZWJ {
					// Keep searching backwards
					if newPos > start {
						newPos--
						for newPos > start {
							cat := IndicCategory(buf.Info[newPos].IndicCategory)
							if cat != ICatM && cat != ICatMPst && !isHalant(buf, newPos) {
								break
							}
							newPos--
						}
					}
				}
				// ZWNJ is handled by state machine - any pre-base matras after H,ZWNJ
				// belong to subsequent syllable.
			}
		} else {
			// No suitable Halant found, don't move
			newPos = start
		}
	}

	if start < newPos && buf.Info[newPos].IndicPosition != uint8(IPosPreM) {
		// Now go see if there's actually any matras...
		// Search backwards from new_pos to start
		for i := newPos; i > start; i-- {
			if buf.Info[i-1].IndicPosition == uint8(IPosPreM) {
				oldPos := i - 1

				// Shouldn't actually happen, but handle it
				if oldPos < base && base <= newPos {
					base--
				}

				// Move matra from oldPos to newPos (shift right)
				//           info[new_pos] = tmp;
				tmp := buf.Info[oldPos]
				tmpPos := buf.Pos[oldPos]
				copy(buf.Info[oldPos:newPos], buf.Info[oldPos+1:newPos+1])
				copy(buf.Pos[oldPos:newPos], buf.Pos[oldPos+1:newPos+1])
				buf.Info[newPos] = tmp
				buf.Pos[newPos] = tmpPos

				// Note: this merge_clusters() is intentionally *after* the reordering.
				// Indic matra reordering is special and tricky...
				mergeEnd := min(end, base+1)
				buf.MergeClusters(newPos, mergeEnd)

				newPos--
			}
		}
		return true
	}

	// Else branch: just merge clusters for matras already before base
	//             if (info[i].indic_position () == POS_PRE_M) {
	//               buffer->merge_clusters (i, hb_min (end, base + 1));
	//               break;
	//             }
	for i := start; i < base; i++ {
		if buf.Info[i].IndicPosition == uint8(IPosPreM) {
			mergeEnd := min(end, base+1)
			buf.MergeClusters(i, mergeEnd)
			break
		}
	}

	return false
}

// moveReph moves reph to its final position.
// Returns the (possibly updated) base index.
func (s *Shaper) moveReph(buf *Buffer, indicInfo []IndicInfo, start, end, base int, config *IndicConfig) int {
	info := buf.Info

	// XOR condition: (category == Repha) XOR (ligated_and_didnt_multiply)
	if start+1 >= end {
		return base
	}
	if IndicPosition(info[start].IndicPosition) != IPosRaToBeReph {
		return base
	}
	isRepha := IndicCategory(info[start].IndicCategory) == ICatRepha
	ligatedAndDidntMultiply := (info[start].GlyphProps&GlyphPropsLigated) != 0 &&
		(info[start].GlyphProps&GlyphPropsMultiplied) == 0
	// debug removed
	// XOR: only proceed if exactly one is true
	if !(isRepha != ligatedAndDidntMultiply) {
		return base
	}

	var newRephPos int
	rephPos := config.RephPos

	// Step 1: If reph should be positioned after post-base consonant forms, jump to step 5
	if rephPos == IPosAfterPost {
		goto reph_step_5
	}

	// Step 2: Find first explicit halant between first post-reph consonant and last main consonant
	{
		newRephPos = start + 1
		for newRephPos < base && !isHalant(buf, newRephPos) {
			newRephPos++
		}
		if newRephPos < base && isHalant(buf, newRephPos) {
			// If ZWJ or ZWNJ follows this halant, position is moved after it
			if newRephPos+1 < base && isIndicJoiner(IndicCategory(info[newRephPos+1].IndicCategory)) {
				newRephPos++
			}
			goto reph_move
		}
	}

	// Step 3: If reph should be repositioned after the main consonant
	if rephPos == IPosAfterMain {
		newRephPos = base
		for newRephPos+1 < end && IndicPosition(info[newRephPos+1].IndicPosition) <= IPosAfterMain {
			newRephPos++
		}
		if newRephPos < end {
			goto reph_move
		}
	}

	// Step 4: If reph should be positioned after sub-joined consonant
	if rephPos == IPosAfterSub {
		newRephPos = base
		for newRephPos+1 < end {
			pos := IndicPosition(info[newRephPos+1].IndicPosition)
			if pos == IPosPostC || pos == IPosAfterPost || pos == IPosSMVD {
				break
			}
			newRephPos++
		}
		if newRephPos < end {
			goto reph_move
		}
	}

	// Step 5: Fallback halant search (copied from step 2)
reph_step_5:
	{
		newRephPos = start + 1
		for newRephPos < base && !isHalant(buf, newRephPos) {
			newRephPos++
		}
		if newRephPos < base && isHalant(buf, newRephPos) {
			if newRephPos+1 < base && isIndicJoiner(IndicCategory(info[newRephPos+1].IndicCategory)) {
				newRephPos++
			}
			goto reph_move
		}
	}

	// Step 6: Otherwise, reorder reph to end of syllable
	{
		newRephPos = end - 1
		for newRephPos > start && IndicPosition(info[newRephPos].IndicPosition) == IPosSMVD {
			newRephPos--
		}

		// If the Reph is ending up after a Matra,Halant sequence,
		// position it before that Halant so it can interact with the Matra.
		if isHalant(buf, newRephPos) {
			for i := base + 1; i < newRephPos; i++ {
				cat := indicInfo[i].Category
				if cat == ICatM || cat == ICatMPst {
					newRephPos--
				}
			}
		}

		goto reph_move
	}

reph_move:
	{
		// Merge clusters and memmove
		buf.MergeClusters(start, newRephPos+1)

		reph := info[start]
		rephInd := indicInfo[start]
		rephP := buf.Pos[start]
		copy(info[start:newRephPos], info[start+1:newRephPos+1])
		copy(indicInfo[start:newRephPos], indicInfo[start+1:newRephPos+1])
		copy(buf.Pos[start:newRephPos], buf.Pos[start+1:newRephPos+1])
		info[newRephPos] = reph
		indicInfo[newRephPos] = rephInd
		buf.Pos[newRephPos] = rephP

		if start < base && base <= newRephPos {
			base--
		}
	}

	return base
}

// moveGlyph moves a glyph from src to dst position, shifting others.
func (s *Shaper) moveGlyph(buf *Buffer, indicInfo []IndicInfo, src, dst int) {
	if src == dst {
		return
	}

	// Adjust dst if it's at the end (means "after the last element")
	// In this case, we actually want to insert at dst-1 position
	if dst >= len(buf.Info) {
		dst = len(buf.Info) - 1
	}

	if src == dst {
		return
	}

	// Save the glyph to move
	glyph := buf.Info[src]
	info := indicInfo[src]

	if src < dst {
		// Moving forward: shift elements left
		copy(buf.Info[src:dst], buf.Info[src+1:dst+1])
		copy(indicInfo[src:dst], indicInfo[src+1:dst+1])
		buf.Info[dst] = glyph
		indicInfo[dst] = info
	} else {
		// Moving backward: shift elements right
		copy(buf.Info[dst+1:src+1], buf.Info[dst:src])
		copy(indicInfo[dst+1:src+1], indicInfo[dst:src])
		buf.Info[dst] = glyph
		indicInfo[dst] = info
	}
}

// Indic feature tags
var (
	tagNukt = MakeTag('n', 'u', 'k', 't') // Nukta forms
	tagAkhn = MakeTag('a', 'k', 'h', 'n') // Akhand ligatures
	tagRphf = MakeTag('r', 'p', 'h', 'f') // Reph forms
	tagRkrf = MakeTag('r', 'k', 'r', 'f') // Rakaar forms
	tagPref = MakeTag('p', 'r', 'e', 'f') // Pre-base forms
	tagBlwf = MakeTag('b', 'l', 'w', 'f') // Below-base forms
	tagAbvf = MakeTag('a', 'b', 'v', 'f') // Above-base forms
	tagHalf = MakeTag('h', 'a', 'l', 'f') // Half forms
	tagPstf = MakeTag('p', 's', 't', 'f') // Post-base forms
	tagVatu = MakeTag('v', 'a', 't', 'u') // Vattu variants
	tagCjct = MakeTag('c', 'j', 'c', 't') // Conjunct forms
	tagPres = MakeTag('p', 'r', 'e', 's') // Pre-base substitutions
	tagAbvs = MakeTag('a', 'b', 'v', 's') // Above-base substitutions
	tagBlws = MakeTag('b', 'l', 'w', 's') // Below-base substitutions
	tagPsts = MakeTag('p', 's', 't', 's') // Post-base substitutions
	tagHaln = MakeTag('h', 'a', 'l', 'n') // Halant forms
	tagDist = MakeTag('d', 'i', 's', 't') // Distances
	tagAbvm = MakeTag('a', 'b', 'v', 'm') // Above-base mark positioning
	tagBlwm = MakeTag('b', 'l', 'w', 'm') // Below-base mark positioning
)

// shapeIndic shapes text using the Indic shaper.
func (s *Shaper) shapeIndic(buf *Buffer, features []Feature) {
	// Set direction to LTR if not set
	if buf.Direction == 0 {
		buf.Direction = DirectionLTR
	}

	// Step 0: Preprocess vowel constraints (insert dotted circles)
	PreprocessVowelConstraints(buf)

	// Detect script from buffer content
	script := s.detectIndicScript(buf)
	config := getIndicConfig(script)

	// Get or create IndicPlan for this script
	indicPlan := s.getIndicPlan(script, config)

	// DEBUG
	if debugIndic {
		fmt.Printf("isOldSpec: script=%s, isOldSpec=%v\n",
			script.String(), indicPlan.isOldSpec)
	}

	// Step 1: Normalize Unicode
	// Indic uses COMPOSED_DIACRITICS mode like USE
	s.normalizeBuffer(buf, NormalizationModeComposedDiacritics)

	// Step 2: Initialize masks after normalization
	buf.ResetMasks(MaskGlobal)

	// Step 3: Map codepoints to glyphs
	s.mapCodepointsToGlyphs(buf)

	// Step 4: Set up Indic properties
	indicInfo := s.setupIndicProperties(buf, config)

	// Step 5: Find syllables
	hasBroken := s.findSyllablesIndic(indicInfo)

	// Step 5.5: Insert dotted circles for broken clusters
	if hasBroken {
		accessor := &indicSyllableAccessor{indicInfo: indicInfo}
		// ICatDOTTEDCIRCLE = 11, ICatRepha = 14
		s.insertSyllabicDottedCircles(buf, accessor,
			uint8(IndicBrokenCluster), // broken syllable type
			uint8(ICatDOTTEDCIRCLE),   // dotted circle category
			int(ICatRepha))            // repha category
		// Update indicInfo after insertion (buffer length may have changed)
		indicInfo = s.setupIndicProperties(buf, config)
		s.findSyllablesIndic(indicInfo)
	}

	// Copy syllable info to GlyphInfo for per-syllable GSUB application
	for i := range buf.Info {
		buf.Info[i].Syllable = indicInfo[i].Syllable
	}

	// Step 6: Set up base masks BEFORE initial reordering
	// setupIndicMasksFromPositions sets MaskGlobal | indicPlan.maskArray[indicCjct] on all glyphs
	s.setupIndicMasksFromPositions(buf, indicInfo, indicPlan)

	// Step 6.5: Initial reordering (before GSUB)
	// This also adds feature masks to glyphs before the base consonant
	// and sets position-dependent feature masks (BLWF, ABVF, PSTF)
	s.initialReorderingIndic(buf, indicInfo, config, indicPlan)

	// Step 7: Apply basic shaping features
	s.applyIndicBasicFeatures(buf, indicPlan)

	// Rebuild indicInfo from buf.Info after GSUB may have changed buffer length
	// (e.g. rphf ligature Ra+Halant → rephdeva shrinks buffer by 1)
	indicInfo = make([]IndicInfo, len(buf.Info))
	for i, info := range buf.Info {
		indicInfo[i] = IndicInfo{
			Category: IndicCategory(info.IndicCategory),
			Position: IndicPosition(info.IndicPosition),
			Syllable: info.Syllable,
		}
	}

	// Step 8: Final reordering (after basic features, before other features)
	s.finalReorderingIndic(buf, indicInfo, config, indicPlan)

	// Step 8.5: Set init mask on first glyph of buffer (after reordering!)
	s.setIndicInitMask(buf, indicPlan)

	// Step 9: Apply user-requested GSUB features (e.g., ss03, salt) BEFORE other features
	// lookup indices than standard features like psts, so they need to be applied first.
	userGSUB, _ := s.categorizeFeatures(features)
	s.applyUserIndicGSUBFeatures(buf, userGSUB)

	// Step 9.5: Apply other GSUB features
	s.applyIndicOtherFeatures(buf, indicPlan)

	// Step 10: Ensure buf.Pos is allocated (may not be if glyph count didn't change during substitutions)
	if len(buf.Pos) != len(buf.Info) {
		buf.Pos = make([]GlyphPos, len(buf.Info))
	}

	// Step 11: Set base advances
	s.setBaseAdvances(buf)

	// Step 12: Apply GPOS features
	// For Indic, we need to apply standard GPOS features even if none were explicitly requested
	gposFeatures := s.getIndicGPOSFeatures(features)
	s.applyGPOS(buf, gposFeatures)

	// Note: Indic uses ZeroWidthMarksNone, so NO zeroMarkWidthsByGDEF call here
}

// getIndicGPOSFeatures returns GPOS features to apply for Indic shaping.
// The Indic-specific features (dist, abvm, blwm) are always required, plus
// standard positioning features (kern, mark, mkmk).
func (s *Shaper) getIndicGPOSFeatures(features []Feature) []Feature {
	// Indic-specific positioning features are ALWAYS applied
	// These are not optional - they are required for correct Indic rendering
	requiredIndicFeatures := []Tag{
		tagDist, // Distances - Indic-specific
		tagAbvm, // Above-base mark positioning - Indic-specific
		tagBlwm, // Below-base mark positioning - Indic-specific
	}

	// Standard positioning features
	standardFeatures := []Tag{
		MakeTag('k', 'e', 'r', 'n'), // Kerning
		MakeTag('m', 'a', 'r', 'k'), // Mark positioning
		MakeTag('m', 'k', 'm', 'k'), // Mark-to-mark positioning
	}

	// Build result: required Indic features + standard features + user-requested features
	result := make([]Feature, 0, len(requiredIndicFeatures)+len(standardFeatures))

	// Add required Indic-specific features first
	for _, tag := range requiredIndicFeatures {
		result = append(result, Feature{Tag: tag, Value: 1})
	}

	// Add standard features
	for _, tag := range standardFeatures {
		result = append(result, Feature{Tag: tag, Value: 1})
	}

	// Add any explicit GPOS features from user (they may override defaults)
	_, userGPOS := s.categorizeFeatures(features)
	for _, f := range userGPOS {
		// Only add if not already in result
		found := false
		for _, existing := range result {
			if existing.Tag == f.Tag {
				found = true
				break
			}
		}
		if !found {
			result = append(result, f)
		}
	}

	return result
}

// setIndicInitMask sets the init feature mask on the first glyph of the buffer.
// Despite F_PER_SYLLABLE flag, init only applies to the very first glyph.
func (s *Shaper) setIndicInitMask(buf *Buffer, indicPlan *IndicPlan) {
	if len(buf.Info) == 0 {
		return
	}
	// Only first glyph gets the init mask
	buf.Info[0].Mask |= indicPlan.maskArray[indicInit]
}

// setupIndicMasksFromPositions sets up feature masks based on Indic positions.
// Note: HALF mask is now set per-syllable in initialReorderingConsonantSyllable
func (s *Shaper) setupIndicMasksFromPositions(buf *Buffer, indicInfo []IndicInfo, indicPlan *IndicPlan) {
	for i := range buf.Info {
		// Start with global mask and CJCT (which is applied to most glyphs)
		buf.Info[i].Mask = MaskGlobal | indicPlan.maskArray[indicCjct]
		// Note: HALF mask is added per-syllable in initialReorderingConsonantSyllable
	}

	// Apply ZWJ/ZWNJ effects on masks
	s.applyIndicJoinerEffects(buf, indicPlan)
}

// applyIndicBasicFeatures applies basic Indic GSUB features.
func (s *Shaper) applyIndicBasicFeatures(buf *Buffer, indicPlan *IndicPlan) {
	if s.gsub == nil {
		return
	}

	// DEBUG
	if debugIndic {
		fmt.Println("applyIndicBasicFeatures: BEFORE any features:")
		for i, info := range buf.Info {
			fmt.Printf("  [%d] gid=%d cp=U+%04X mask=0x%X\n", i, info.GlyphID, info.Codepoint, info.Mask)
		}
	}

	// ALL basic features have F_PER_SYLLABLE flag - must be applied per-syllable
	// Apply each basic feature with the correct auto_zwnj/auto_zwj flags.
	// All Indic basic features have F_MANUAL_JOINERS (auto_zwnj=false, auto_zwj=false).
	basicIndices := []IndicFeatureIndex{
		indicNukt, indicAkhn, indicRphf, indicRkrf, indicPref,
		indicBlwf, indicAbvf, indicHalf, indicPstf, indicVatu, indicCjct,
	}
	for _, idx := range basicIndices {
		feat := indicFeatures[idx]
		autoZWNJ := feat.flags&indicFlagManualZWNJ == 0
		autoZWJ := feat.flags&indicFlagManualZWJ == 0
		s.applyFeaturePerSyllableWithOpts(buf, feat.tag, indicPlan.maskArray[idx], autoZWNJ, autoZWJ)
	}
}

// applyIndicJoinerEffects applies ZWJ/ZWNJ effects on glyph masks.
//
//   - ZWNJ disables HALF feature for preceding glyphs (explicit virama form)
//   - ZWJ does NOT disable HALF (allows explicit half form)
//   - ZWJ/ZWNJ disable CJCT feature by being present (F_MANUAL_ZWJ)
func (s *Shaper) applyIndicJoinerEffects(buf *Buffer, indicPlan *IndicPlan) {
	for i := 1; i < len(buf.Info); i++ {
		cp := buf.Info[i].Codepoint
		isZWNJ := cp == 0x200C
		isZWJ := cp == 0x200D

		if !isZWNJ && !isZWJ {
			continue
		}

		// Walk backwards from joiner position
		j := i - 1
		for j >= 0 {
			// Only ZWNJ disables HALF, not ZWJ!
			// ZWJ requests explicit half form, ZWNJ requests explicit virama form.
			if isZWNJ {
				buf.Info[j].Mask &^= indicPlan.maskArray[indicHalf]
			}

			// ZWJ/ZWNJ disable CJCT by simply being there
			// (we don't skip them for CJCT feature, ie. F_MANUAL_ZWJ)
			buf.Info[j].Mask &^= indicPlan.maskArray[indicCjct]

			// Stop at consonant
			cat := GetIndicCategory(buf.Info[j].Codepoint)
			if cat == ICatC || cat == ICatRa {
				break
			}
			j--
		}
	}
}

// GetIndicCategory returns the Indic category for a codepoint.
func GetIndicCategory(cp Codepoint) IndicCategory {
	cat, _ := GetIndicCategories(cp)
	return cat
}

// applyIndicOtherFeatures applies other Indic GSUB features.
// operate within syllable boundaries to prevent cross-syllable substitutions.
func (s *Shaper) applyIndicOtherFeatures(buf *Buffer, indicPlan *IndicPlan) {
	if s.gsub == nil {
		return
	}

	// Apply 'init' feature (only first glyph has the init mask set)
	s.applyFeaturePerSyllableWithOpts(buf, MakeTag('i', 'n', 'i', 't'), indicPlan.maskArray[indicInit], false, false)

	// All have F_MANUAL_JOINERS | F_PER_SYLLABLE → autoZWNJ=false, autoZWJ=false
	otherIndicFeatures := []Tag{
		tagPres, // Pre-base substitutions
		tagAbvs, // Above-base substitutions
		tagBlws, // Below-base substitutions
		tagPsts, // Post-base substitutions
		tagHaln, // Halant forms
	}

	for _, tag := range otherIndicFeatures {
		s.applyFeaturePerSyllableWithOpts(buf, tag, MaskGlobal, false, false)
	}

	// These use default flags: autoZWNJ=true, autoZWJ=true
	standardFeatures := []Tag{
		tagCalt, // Contextual alternates
		tagClig, // Contextual ligatures
	}

	for _, tag := range standardFeatures {
		s.applyFeaturePerSyllable(buf, tag, MaskGlobal)
	}
}

// applyFeaturePerSyllable applies a GSUB feature respecting syllable boundaries.
// This ensures that context-based lookups (ligatures, etc.) only match glyphs
// within the same syllable, preventing cross-syllable substitutions.
func (s *Shaper) applyFeaturePerSyllable(buf *Buffer, tag Tag, featureMask uint32) {
	s.applyFeaturePerSyllableWithOpts(buf, tag, featureMask, true, true)
}

// applyFeaturePerSyllableWithOpts applies a GSUB feature per syllable with explicit
// auto_zwnj/auto_zwj flags.
// F_MANUAL_ZWNJ (auto_zwnj=false) and/or F_MANUAL_ZWJ (auto_zwj=false).
//
//	map->auto_zwnj = !(info->flags & F_MANUAL_ZWNJ);
//	map->auto_zwj  = !(info->flags & F_MANUAL_ZWJ);
func (s *Shaper) applyFeaturePerSyllableWithOpts(buf *Buffer, tag Tag, featureMask uint32, autoZWNJ, autoZWJ bool) {
	if s.gsub == nil || len(buf.Info) == 0 {
		return
	}

	// Find syllable boundaries and apply feature to each syllable separately
	start := 0
	for start < len(buf.Info) {
		syllable := buf.Info[start].Syllable
		end := start + 1
		for end < len(buf.Info) && buf.Info[end].Syllable == syllable {
			end++
		}

		// Apply feature to this syllable range only
		s.gsub.ApplyFeatureToBufferRangeWithOpts(tag, buf, s.gdef, featureMask, s.font, start, end, autoZWNJ, autoZWJ)

		// Adjust end for next iteration (buffer length may have changed)
		newEnd := start
		for newEnd < len(buf.Info) && buf.Info[newEnd].Syllable == syllable {
			newEnd++
		}
		start = newEnd
	}
}

// tagClig is the contextual ligatures feature tag
var tagClig = MakeTag('c', 'l', 'i', 'g')

// applyUserIndicGSUBFeatures applies user-requested GSUB features that are not
// standard Indic features. Standard Indic features are already applied by
// applyIndicBasicFeatures and applyIndicOtherFeatures.
func (s *Shaper) applyUserIndicGSUBFeatures(buf *Buffer, userFeatures []Feature) {
	if s.gsub == nil || len(userFeatures) == 0 {
		return
	}

	for _, f := range userFeatures {
		if f.Value == 0 {
			continue
		}
		// Skip standard Indic features that are already applied
		if isStandardIndicGSUBFeature(f.Tag) {
			continue
		}
		// Apply the user feature
		s.gsub.ApplyFeatureToBufferWithMask(f.Tag, buf, s.gdef, MaskGlobal, s.font)
	}
}

// isStandardIndicGSUBFeature returns true if the tag is a standard Indic GSUB feature
// that is already applied by applyIndicBasicFeatures or applyIndicOtherFeatures.
func isStandardIndicGSUBFeature(tag Tag) bool {
	switch tag {
	// Basic features (from applyIndicBasicFeatures)
	case tagNukt, // nukt
		tagAkhn,                     // akhn
		tagRphf,                     // rphf
		tagRkrf,                     // rkrf
		tagPref,                     // pref
		tagBlwf,                     // blwf
		tagAbvf,                     // abvf
		tagHalf,                     // half
		tagPstf,                     // pstf
		tagVatu,                     // vatu
		tagCjct,                     // cjct
		MakeTag('c', 'f', 'a', 'r'): // cfar
		return true
	// Other features (from applyIndicOtherFeatures)
	case MakeTag('i', 'n', 'i', 't'), // init
		tagPres,                     // pres
		tagAbvs,                     // abvs
		tagBlws,                     // blws
		tagPsts,                     // psts
		tagHaln,                     // haln
		tagCalt,                     // calt
		tagClig:                     // clig
		return true
	// Common features applied in basic/other phases
	case MakeTag('l', 'o', 'c', 'l'), // locl
		MakeTag('c', 'c', 'm', 'p'), // ccmp
		MakeTag('r', 'l', 'i', 'g'), // rlig
		MakeTag('l', 'i', 'g', 'a'): // liga
		return true
	}
	return false
}
