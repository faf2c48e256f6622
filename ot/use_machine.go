
//line use_machine.rl:1
// Copyright 2015 Mozilla Foundation, Google, Inc.
// Ported to Go for textshape.
//

package ot

//line use_machine_ragel.go:12
const useSyllableMachine_start int = 1
const useSyllableMachine_first_final int = 1
const useSyllableMachine_error int = -1

const useSyllableMachine_en_main int = 1

//line use_machine.rl:12

//line use_machine.rl:138

// FindSyllablesUSE finds USE syllable boundaries in the buffer.
// It sets syllables[i].Syllable to (serial << 4 | type) for each glyph.
func FindSyllablesUSE(syllables []USESyllableInfo) (hasBroken bool) {
  if len(syllables) == 0 {
    return false
  }

  // Build category array, filtering out CGJ and ZWNJ-before-mark.
  // Filter 1: not_ccs_default_ignorable filters CGJ
  // Filter 2: ZWNJ is filtered out if the next non-CGJ glyph is a unicode mark
  n := len(syllables)
  data := make([]byte, n)
  mapping := make([]int, 0, n) // Maps filtered index to original index

  for i := 0; i < n; i++ {
    cat := syllables[i].Category
    if cat == USE_CGJ {
      continue
    }
    // Filter 1b: Skip ZWJ (U+200D) from Ragel input.
    // within clusters, but our Go Ragel compilation breaks clusters at ZWJ.
    // U+2060 (Word Joiner) also has category WJ but must NOT be filtered - it should
    // break clusters and trigger dotted circle insertion for broken syllables.
    // Only filter the actual ZWJ character (U+200D).
    if cat == USE_WJ && syllables[i].Codepoint == 0x200D {
      continue
    }
    // Filter 2: Skip ZWNJ if next non-CGJ glyph is a unicode mark
    if cat == USE_ZWNJ {
      filterZWNJ := false
      for j := i + 1; j < n; j++ {
        if syllables[j].Category == USE_CGJ {
          continue // Skip CGJ when looking ahead
        }
        // Found next non-CGJ glyph: filter ZWNJ if it's a mark
        filterZWNJ = IsUnicodeMark(syllables[j].Codepoint)
        break
      }
      if filterZWNJ {
        continue
      }
    }
    data[len(mapping)] = byte(cat)
    mapping = append(mapping, i)
  }

  if len(mapping) == 0 {
    return false
  }

  filteredData := data[:len(mapping)]

  var cs, p, pe, eof, ts, te, act int
  _ = act // Suppress unused variable warning

  pe = len(filteredData)
  eof = pe

  var syllableSerial uint8 = 1

  foundSyllable := func(syllableType USESyllableType) {
    // Map filtered indices back to original indices
    origStart := mapping[ts]
    origEnd := n
    if te < len(mapping) {
      origEnd = mapping[te]
    }

    for i := origStart; i < origEnd; i++ {
      syllables[i].Syllable = (syllableSerial << 4) | uint8(syllableType)
      syllables[i].SyllableType = syllableType
    }
    syllableSerial++
    if syllableSerial == 16 {
      syllableSerial = 1
    }
  }

  // Use filtered data for Ragel
  data = filteredData

  
//line use_machine_ragel.go:86
	{
	cs = useSyllableMachine_start
	ts = 0
	te = 0
	act = 0
	}

//line use_machine_ragel.go:94
	{
	if p == pe {
		goto _test_eof
	}
	switch cs {
	case 1:
		goto st_case_1
	case 2:
		goto st_case_2
	case 3:
		goto st_case_3
	case 4:
		goto st_case_4
	case 5:
		goto st_case_5
	case 6:
		goto st_case_6
	case 7:
		goto st_case_7
	case 8:
		goto st_case_8
	case 9:
		goto st_case_9
	case 10:
		goto st_case_10
	case 11:
		goto st_case_11
	case 12:
		goto st_case_12
	case 13:
		goto st_case_13
	case 14:
		goto st_case_14
	case 15:
		goto st_case_15
	case 16:
		goto st_case_16
	case 17:
		goto st_case_17
	case 18:
		goto st_case_18
	case 19:
		goto st_case_19
	case 20:
		goto st_case_20
	case 21:
		goto st_case_21
	case 22:
		goto st_case_22
	case 23:
		goto st_case_23
	case 24:
		goto st_case_24
	case 25:
		goto st_case_25
	case 26:
		goto st_case_26
	case 27:
		goto st_case_27
	case 28:
		goto st_case_28
	case 29:
		goto st_case_29
	case 30:
		goto st_case_30
	case 31:
		goto st_case_31
	case 32:
		goto st_case_32
	case 33:
		goto st_case_33
	case 34:
		goto st_case_34
	case 35:
		goto st_case_35
	case 36:
		goto st_case_36
	case 37:
		goto st_case_37
	case 38:
		goto st_case_38
	case 39:
		goto st_case_39
	case 40:
		goto st_case_40
	case 41:
		goto st_case_41
	case 42:
		goto st_case_42
	case 43:
		goto st_case_43
	case 44:
		goto st_case_44
	case 45:
		goto st_case_45
	case 46:
		goto st_case_46
	case 47:
		goto st_case_47
	case 48:
		goto st_case_48
	case 49:
		goto st_case_49
	case 50:
		goto st_case_50
	case 51:
		goto st_case_51
	case 52:
		goto st_case_52
	case 53:
		goto st_case_53
	case 54:
		goto st_case_54
	case 55:
		goto st_case_55
	case 56:
		goto st_case_56
	case 57:
		goto st_case_57
	case 58:
		goto st_case_58
	case 59:
		goto st_case_59
	case 60:
		goto st_case_60
	case 61:
		goto st_case_61
	case 62:
		goto st_case_62
	case 63:
		goto st_case_63
	case 64:
		goto st_case_64
	case 65:
		goto st_case_65
	case 66:
		goto st_case_66
	case 67:
		goto st_case_67
	case 68:
		goto st_case_68
	case 69:
		goto st_case_69
	case 70:
		goto st_case_70
	case 71:
		goto st_case_71
	case 72:
		goto st_case_72
	case 73:
		goto st_case_73
	case 74:
		goto st_case_74
	case 75:
		goto st_case_75
	case 76:
		goto st_case_76
	case 77:
		goto st_case_77
	case 78:
		goto st_case_78
	case 79:
		goto st_case_79
	case 80:
		goto st_case_80
	case 81:
		goto st_case_81
	case 82:
		goto st_case_82
	case 83:
		goto st_case_83
	case 84:
		goto st_case_84
	case 85:
		goto st_case_85
	case 86:
		goto st_case_86
	case 87:
		goto st_case_87
	case 88:
		goto st_case_88
	case 89:
		goto st_case_89
	case 90:
		goto st_case_90
	case 91:
		goto st_case_91
	case 92:
		goto st_case_92
	case 93:
		goto st_case_93
	case 94:
		goto st_case_94
	case 95:
		goto st_case_95
	case 96:
		goto st_case_96
	case 97:
		goto st_case_97
	case 98:
		goto st_case_98
	case 99:
		goto st_case_99
	case 100:
		goto st_case_100
	case 101:
		goto st_case_101
	case 102:
		goto st_case_102
	case 103:
		goto st_case_103
	case 104:
		goto st_case_104
	case 105:
		goto st_case_105
	case 106:
		goto st_case_106
	case 107:
		goto st_case_107
	case 108:
		goto st_case_108
	case 109:
		goto st_case_109
	case 110:
		goto st_case_110
	case 111:
		goto st_case_111
	case 112:
		goto st_case_112
	case 113:
		goto st_case_113
	case 114:
		goto st_case_114
	case 115:
		goto st_case_115
	case 116:
		goto st_case_116
	case 117:
		goto st_case_117
	case 118:
		goto st_case_118
	case 119:
		goto st_case_119
	case 120:
		goto st_case_120
	case 121:
		goto st_case_121
	case 122:
		goto st_case_122
	case 123:
		goto st_case_123
	case 124:
		goto st_case_124
	case 125:
		goto st_case_125
	case 126:
		goto st_case_126
	case 0:
		goto st_case_0
	}
	goto st_out
tr0:
//line use_machine.rl:131
p = (te) - 1
{ foundSyllable(USE_SymbolCluster) }
	goto st1
tr5:
//line use_machine.rl:135
te = p+1
{ foundSyllable(USE_NonCluster) }
	goto st1
tr11:
//line use_machine.rl:134
te = p+1
{ foundSyllable(USE_BrokenCluster); hasBroken = true }
	goto st1
tr39:
//line use_machine.rl:131
te = p
p--
{ foundSyllable(USE_SymbolCluster) }
	goto st1
tr42:
//line use_machine.rl:131
te = p+1
{ foundSyllable(USE_SymbolCluster) }
	goto st1
tr69:
//line use_machine.rl:128
te = p
p--
{ foundSyllable(USE_StandardCluster) }
	goto st1
tr71:
//line use_machine.rl:128
te = p+1
{ foundSyllable(USE_StandardCluster) }
	goto st1
tr96:
//line use_machine.rl:127
te = p
p--
{ foundSyllable(USE_SakotTerminatedCluster) }
	goto st1
tr98:
//line use_machine.rl:127
te = p+1
{ foundSyllable(USE_SakotTerminatedCluster) }
	goto st1
tr100:
//line use_machine.rl:126
te = p
p--
{ foundSyllable(USE_ViramaTerminatedCluster) }
	goto st1
tr101:
//line use_machine.rl:126
te = p+1
{ foundSyllable(USE_ViramaTerminatedCluster) }
	goto st1
tr102:
//line use_machine.rl:130
te = p
p--
{ foundSyllable(USE_NumeralCluster) }
	goto st1
tr104:
//line use_machine.rl:130
te = p+1
{ foundSyllable(USE_NumeralCluster) }
	goto st1
tr105:
//line use_machine.rl:129
te = p
p--
{ foundSyllable(USE_NumberJoinerTerminatedCluster) }
	goto st1
tr106:
//line use_machine.rl:129
te = p+1
{ foundSyllable(USE_NumberJoinerTerminatedCluster) }
	goto st1
tr135:
//line use_machine.rl:134
te = p
p--
{ foundSyllable(USE_BrokenCluster); hasBroken = true }
	goto st1
tr137:
//line NONE:1
	switch act {
	case 8:
	{p = (te) - 1
 foundSyllable(USE_NonCluster) }
	case 9:
	{p = (te) - 1
 foundSyllable(USE_BrokenCluster); hasBroken = true }
	}
	
	goto st1
tr141:
//line use_machine.rl:135
te = p
p--
{ foundSyllable(USE_NonCluster) }
	goto st1
tr142:
//line use_machine.rl:132
te = p
p--
{ foundSyllable(USE_HieroglyphCluster) }
	goto st1
tr143:
//line use_machine.rl:132
te = p+1
{ foundSyllable(USE_HieroglyphCluster) }
	goto st1
	st1:
//line NONE:1
ts = 0

		if p++; p == pe {
			goto _test_eof1
		}
	st_case_1:
//line NONE:1
ts = p

//line use_machine_ragel.go:483
		switch data[p] {
		case 0:
			goto st2
		case 1:
			goto st31
		case 4:
			goto st59
		case 5:
			goto st61
		case 11:
			goto st90
		case 12:
			goto st91
		case 13:
			goto st116
		case 14:
			goto tr11
		case 18:
			goto st118
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 27:
			goto st108
		case 28:
			goto st110
		case 29:
			goto st111
		case 30:
			goto st112
		case 31:
			goto st90
		case 32:
			goto st113
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 41:
			goto st119
		case 42:
			goto st120
		case 43:
			goto st121
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr35
		case 49:
			goto st122
		case 51:
			goto tr36
		case 53:
			goto st115
		case 56:
			goto tr38
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st114
		}
		goto tr5
	st2:
		if p++; p == pe {
			goto _test_eof2
		}
	st_case_2:
		switch data[p] {
		case 11:
			goto st3
		case 12:
			goto st4
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 27:
			goto st21
		case 28:
			goto st23
		case 29:
			goto st24
		case 30:
			goto st25
		case 31:
			goto st3
		case 32:
			goto st26
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 41:
			goto st29
		case 42:
			goto st30
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 53:
			goto st28
		case 56:
			goto st11
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st27
		}
		goto tr39
	st3:
		if p++; p == pe {
			goto _test_eof3
		}
	st_case_3:
		switch data[p] {
		case 11:
			goto st3
		case 12:
			goto st4
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 27:
			goto st21
		case 28:
			goto st23
		case 29:
			goto st24
		case 30:
			goto st25
		case 31:
			goto st3
		case 32:
			goto st26
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 53:
			goto st28
		case 56:
			goto st11
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st27
		}
		goto tr39
	st4:
		if p++; p == pe {
			goto _test_eof4
		}
	st_case_4:
		switch data[p] {
		case 1:
			goto st3
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st5:
		if p++; p == pe {
			goto _test_eof5
		}
	st_case_5:
		switch data[p] {
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		}
		goto tr39
	st6:
		if p++; p == pe {
			goto _test_eof6
		}
	st_case_6:
		switch data[p] {
		case 14:
			goto tr42
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		}
		goto tr39
	st7:
		if p++; p == pe {
			goto _test_eof7
		}
	st_case_7:
		switch data[p] {
		case 14:
			goto tr42
		case 25:
			goto st7
		case 26:
			goto st8
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		}
		goto tr39
	st8:
		if p++; p == pe {
			goto _test_eof8
		}
	st_case_8:
		switch data[p] {
		case 14:
			goto tr42
		case 26:
			goto st8
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		}
		goto tr39
	st9:
		if p++; p == pe {
			goto _test_eof9
		}
	st_case_9:
		switch data[p] {
		case 14:
			goto tr42
		case 45:
			goto st9
		case 46:
			goto st10
		}
		goto tr39
	st10:
		if p++; p == pe {
			goto _test_eof10
		}
	st_case_10:
		switch data[p] {
		case 14:
			goto tr42
		case 46:
			goto st10
		}
		goto tr39
	st11:
		if p++; p == pe {
			goto _test_eof11
		}
	st_case_11:
		if data[p] == 14 {
			goto tr42
		}
		goto tr39
	st12:
		if p++; p == pe {
			goto _test_eof12
		}
	st_case_12:
		switch data[p] {
		case 14:
			goto tr42
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		}
		goto tr39
	st13:
		if p++; p == pe {
			goto _test_eof13
		}
	st_case_13:
		switch data[p] {
		case 14:
			goto tr42
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		}
		goto tr39
	st14:
		if p++; p == pe {
			goto _test_eof14
		}
	st_case_14:
		switch data[p] {
		case 14:
			goto tr42
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		}
		goto tr39
	st15:
		if p++; p == pe {
			goto _test_eof15
		}
	st_case_15:
		switch data[p] {
		case 1:
			goto st16
		case 14:
			goto tr42
		}
		goto tr39
	st16:
		if p++; p == pe {
			goto _test_eof16
		}
	st_case_16:
		switch data[p] {
		case 14:
			goto tr42
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		}
		goto tr39
	st17:
		if p++; p == pe {
			goto _test_eof17
		}
	st_case_17:
		switch data[p] {
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st18:
		if p++; p == pe {
			goto _test_eof18
		}
	st_case_18:
		switch data[p] {
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st19:
		if p++; p == pe {
			goto _test_eof19
		}
	st_case_19:
		switch data[p] {
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st20:
		if p++; p == pe {
			goto _test_eof20
		}
	st_case_20:
		switch data[p] {
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st21:
		if p++; p == pe {
			goto _test_eof21
		}
	st_case_21:
		switch data[p] {
		case 12:
			goto st22
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 28:
			goto st23
		case 29:
			goto st24
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st22:
		if p++; p == pe {
			goto _test_eof22
		}
	st_case_22:
		switch data[p] {
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st23:
		if p++; p == pe {
			goto _test_eof23
		}
	st_case_23:
		switch data[p] {
		case 12:
			goto st22
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 29:
			goto st24
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st24:
		if p++; p == pe {
			goto _test_eof24
		}
	st_case_24:
		switch data[p] {
		case 12:
			goto st22
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st25:
		if p++; p == pe {
			goto _test_eof25
		}
	st_case_25:
		switch data[p] {
		case 12:
			goto st22
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 27:
			goto st21
		case 28:
			goto st23
		case 29:
			goto st24
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		case 53:
			goto st5
		}
		goto tr39
	st26:
		if p++; p == pe {
			goto _test_eof26
		}
	st_case_26:
		switch data[p] {
		case 11:
			goto st3
		case 12:
			goto st4
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 27:
			goto st21
		case 28:
			goto st23
		case 29:
			goto st24
		case 30:
			goto st25
		case 32:
			goto st26
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 53:
			goto st28
		case 56:
			goto st11
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st27
		}
		goto tr39
	st27:
		if p++; p == pe {
			goto _test_eof27
		}
	st_case_27:
		switch data[p] {
		case 1:
			goto st3
		case 14:
			goto tr42
		}
		goto tr39
	st28:
		if p++; p == pe {
			goto _test_eof28
		}
	st_case_28:
		switch data[p] {
		case 1:
			goto st3
		case 14:
			goto tr42
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 48:
			goto st15
		}
		goto tr39
	st29:
		if p++; p == pe {
			goto _test_eof29
		}
	st_case_29:
		switch data[p] {
		case 14:
			goto tr42
		case 41:
			goto st29
		case 42:
			goto st30
		}
		goto tr39
	st30:
		if p++; p == pe {
			goto _test_eof30
		}
	st_case_30:
		switch data[p] {
		case 14:
			goto tr42
		case 42:
			goto st30
		}
		goto tr39
	st31:
		if p++; p == pe {
			goto _test_eof31
		}
	st_case_31:
		switch data[p] {
		case 11:
			goto st31
		case 12:
			goto st32
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 27:
			goto st49
		case 28:
			goto st51
		case 29:
			goto st52
		case 30:
			goto st53
		case 31:
			goto st31
		case 32:
			goto st54
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 44:
			goto st55
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st56
		case 53:
			goto st57
		case 56:
			goto st58
		}
		goto tr69
	st32:
		if p++; p == pe {
			goto _test_eof32
		}
	st_case_32:
		switch data[p] {
		case 1:
			goto st31
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st33:
		if p++; p == pe {
			goto _test_eof33
		}
	st_case_33:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		}
		goto tr69
	st34:
		if p++; p == pe {
			goto _test_eof34
		}
	st_case_34:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		}
		goto tr69
	st35:
		if p++; p == pe {
			goto _test_eof35
		}
	st_case_35:
		switch data[p] {
		case 14:
			goto tr71
		case 25:
			goto st35
		case 26:
			goto st36
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		}
		goto tr69
	st36:
		if p++; p == pe {
			goto _test_eof36
		}
	st_case_36:
		switch data[p] {
		case 14:
			goto tr71
		case 26:
			goto st36
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		}
		goto tr69
	st37:
		if p++; p == pe {
			goto _test_eof37
		}
	st_case_37:
		switch data[p] {
		case 14:
			goto tr71
		case 45:
			goto st37
		case 46:
			goto st38
		}
		goto tr69
	st38:
		if p++; p == pe {
			goto _test_eof38
		}
	st_case_38:
		switch data[p] {
		case 14:
			goto tr71
		case 46:
			goto st38
		}
		goto tr69
	st39:
		if p++; p == pe {
			goto _test_eof39
		}
	st_case_39:
		if data[p] == 14 {
			goto tr71
		}
		goto tr69
	st40:
		if p++; p == pe {
			goto _test_eof40
		}
	st_case_40:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		}
		goto tr69
	st41:
		if p++; p == pe {
			goto _test_eof41
		}
	st_case_41:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		}
		goto tr69
	st42:
		if p++; p == pe {
			goto _test_eof42
		}
	st_case_42:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		}
		goto tr69
	st43:
		if p++; p == pe {
			goto _test_eof43
		}
	st_case_43:
		switch data[p] {
		case 1:
			goto st44
		case 14:
			goto tr98
		}
		goto tr96
	st44:
		if p++; p == pe {
			goto _test_eof44
		}
	st_case_44:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		}
		goto tr69
	st45:
		if p++; p == pe {
			goto _test_eof45
		}
	st_case_45:
		switch data[p] {
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st46:
		if p++; p == pe {
			goto _test_eof46
		}
	st_case_46:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st47:
		if p++; p == pe {
			goto _test_eof47
		}
	st_case_47:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st48:
		if p++; p == pe {
			goto _test_eof48
		}
	st_case_48:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st49:
		if p++; p == pe {
			goto _test_eof49
		}
	st_case_49:
		switch data[p] {
		case 12:
			goto st50
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 28:
			goto st51
		case 29:
			goto st52
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st50:
		if p++; p == pe {
			goto _test_eof50
		}
	st_case_50:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st51:
		if p++; p == pe {
			goto _test_eof51
		}
	st_case_51:
		switch data[p] {
		case 12:
			goto st50
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 29:
			goto st52
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st52:
		if p++; p == pe {
			goto _test_eof52
		}
	st_case_52:
		switch data[p] {
		case 12:
			goto st50
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st53:
		if p++; p == pe {
			goto _test_eof53
		}
	st_case_53:
		switch data[p] {
		case 12:
			goto st50
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 27:
			goto st49
		case 28:
			goto st51
		case 29:
			goto st52
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		case 53:
			goto st33
		}
		goto tr69
	st54:
		if p++; p == pe {
			goto _test_eof54
		}
	st_case_54:
		switch data[p] {
		case 11:
			goto st31
		case 12:
			goto st32
		case 14:
			goto tr71
		case 22:
			goto st45
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 27:
			goto st49
		case 28:
			goto st51
		case 29:
			goto st52
		case 30:
			goto st53
		case 32:
			goto st54
		case 33:
			goto st46
		case 34:
			goto st47
		case 35:
			goto st48
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 44:
			goto st55
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st56
		case 53:
			goto st57
		case 56:
			goto st58
		}
		goto tr69
	st55:
		if p++; p == pe {
			goto _test_eof55
		}
	st_case_55:
		switch data[p] {
		case 1:
			goto st31
		case 14:
			goto tr101
		}
		goto tr100
	st56:
		if p++; p == pe {
			goto _test_eof56
		}
	st_case_56:
		switch data[p] {
		case 1:
			goto st31
		case 14:
			goto tr98
		}
		goto tr96
	st57:
		if p++; p == pe {
			goto _test_eof57
		}
	st_case_57:
		switch data[p] {
		case 1:
			goto st31
		case 14:
			goto tr71
		case 23:
			goto st33
		case 24:
			goto st34
		case 25:
			goto st35
		case 26:
			goto st36
		case 37:
			goto st40
		case 38:
			goto st41
		case 39:
			goto st42
		case 45:
			goto st37
		case 46:
			goto st38
		case 47:
			goto st39
		case 48:
			goto st43
		}
		goto tr69
	st58:
		if p++; p == pe {
			goto _test_eof58
		}
	st_case_58:
		if data[p] == 14 {
			goto tr101
		}
		goto tr100
	st59:
		if p++; p == pe {
			goto _test_eof59
		}
	st_case_59:
		switch data[p] {
		case 13:
			goto st60
		case 14:
			goto tr104
		}
		goto tr102
	st60:
		if p++; p == pe {
			goto _test_eof60
		}
	st_case_60:
		switch data[p] {
		case 4:
			goto st59
		case 14:
			goto tr106
		}
		goto tr105
	st61:
		if p++; p == pe {
			goto _test_eof61
		}
	st_case_61:
		switch data[p] {
		case 11:
			goto st62
		case 12:
			goto st63
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 27:
			goto st80
		case 28:
			goto st82
		case 29:
			goto st83
		case 30:
			goto st84
		case 31:
			goto st62
		case 32:
			goto st85
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 41:
			goto st29
		case 42:
			goto st30
		case 44:
			goto st86
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st87
		case 53:
			goto st88
		case 56:
			goto st89
		}
		goto tr69
	st62:
		if p++; p == pe {
			goto _test_eof62
		}
	st_case_62:
		switch data[p] {
		case 11:
			goto st62
		case 12:
			goto st63
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 27:
			goto st80
		case 28:
			goto st82
		case 29:
			goto st83
		case 30:
			goto st84
		case 31:
			goto st62
		case 32:
			goto st85
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 44:
			goto st86
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st87
		case 53:
			goto st88
		case 56:
			goto st89
		}
		goto tr69
	st63:
		if p++; p == pe {
			goto _test_eof63
		}
	st_case_63:
		switch data[p] {
		case 1:
			goto st62
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st64:
		if p++; p == pe {
			goto _test_eof64
		}
	st_case_64:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		}
		goto tr69
	st65:
		if p++; p == pe {
			goto _test_eof65
		}
	st_case_65:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		}
		goto tr69
	st66:
		if p++; p == pe {
			goto _test_eof66
		}
	st_case_66:
		switch data[p] {
		case 14:
			goto tr71
		case 25:
			goto st66
		case 26:
			goto st67
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		}
		goto tr69
	st67:
		if p++; p == pe {
			goto _test_eof67
		}
	st_case_67:
		switch data[p] {
		case 14:
			goto tr71
		case 26:
			goto st67
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		}
		goto tr69
	st68:
		if p++; p == pe {
			goto _test_eof68
		}
	st_case_68:
		switch data[p] {
		case 14:
			goto tr71
		case 45:
			goto st68
		case 46:
			goto st69
		}
		goto tr69
	st69:
		if p++; p == pe {
			goto _test_eof69
		}
	st_case_69:
		switch data[p] {
		case 14:
			goto tr71
		case 46:
			goto st69
		}
		goto tr69
	st70:
		if p++; p == pe {
			goto _test_eof70
		}
	st_case_70:
		if data[p] == 14 {
			goto tr71
		}
		goto tr69
	st71:
		if p++; p == pe {
			goto _test_eof71
		}
	st_case_71:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		}
		goto tr69
	st72:
		if p++; p == pe {
			goto _test_eof72
		}
	st_case_72:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		}
		goto tr69
	st73:
		if p++; p == pe {
			goto _test_eof73
		}
	st_case_73:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		}
		goto tr69
	st74:
		if p++; p == pe {
			goto _test_eof74
		}
	st_case_74:
		switch data[p] {
		case 1:
			goto st75
		case 14:
			goto tr98
		}
		goto tr96
	st75:
		if p++; p == pe {
			goto _test_eof75
		}
	st_case_75:
		switch data[p] {
		case 14:
			goto tr71
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		}
		goto tr69
	st76:
		if p++; p == pe {
			goto _test_eof76
		}
	st_case_76:
		switch data[p] {
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st77:
		if p++; p == pe {
			goto _test_eof77
		}
	st_case_77:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st78:
		if p++; p == pe {
			goto _test_eof78
		}
	st_case_78:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st79:
		if p++; p == pe {
			goto _test_eof79
		}
	st_case_79:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st80:
		if p++; p == pe {
			goto _test_eof80
		}
	st_case_80:
		switch data[p] {
		case 12:
			goto st81
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 28:
			goto st82
		case 29:
			goto st83
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st81:
		if p++; p == pe {
			goto _test_eof81
		}
	st_case_81:
		switch data[p] {
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st82:
		if p++; p == pe {
			goto _test_eof82
		}
	st_case_82:
		switch data[p] {
		case 12:
			goto st81
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 29:
			goto st83
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st83:
		if p++; p == pe {
			goto _test_eof83
		}
	st_case_83:
		switch data[p] {
		case 12:
			goto st81
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st84:
		if p++; p == pe {
			goto _test_eof84
		}
	st_case_84:
		switch data[p] {
		case 12:
			goto st81
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 27:
			goto st80
		case 28:
			goto st82
		case 29:
			goto st83
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		case 53:
			goto st64
		}
		goto tr69
	st85:
		if p++; p == pe {
			goto _test_eof85
		}
	st_case_85:
		switch data[p] {
		case 11:
			goto st62
		case 12:
			goto st63
		case 14:
			goto tr71
		case 22:
			goto st76
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 27:
			goto st80
		case 28:
			goto st82
		case 29:
			goto st83
		case 30:
			goto st84
		case 32:
			goto st85
		case 33:
			goto st77
		case 34:
			goto st78
		case 35:
			goto st79
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 44:
			goto st86
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st87
		case 53:
			goto st88
		case 56:
			goto st89
		}
		goto tr69
	st86:
		if p++; p == pe {
			goto _test_eof86
		}
	st_case_86:
		switch data[p] {
		case 1:
			goto st62
		case 14:
			goto tr101
		}
		goto tr100
	st87:
		if p++; p == pe {
			goto _test_eof87
		}
	st_case_87:
		switch data[p] {
		case 1:
			goto st62
		case 14:
			goto tr98
		}
		goto tr96
	st88:
		if p++; p == pe {
			goto _test_eof88
		}
	st_case_88:
		switch data[p] {
		case 1:
			goto st62
		case 14:
			goto tr71
		case 23:
			goto st64
		case 24:
			goto st65
		case 25:
			goto st66
		case 26:
			goto st67
		case 37:
			goto st71
		case 38:
			goto st72
		case 39:
			goto st73
		case 45:
			goto st68
		case 46:
			goto st69
		case 47:
			goto st70
		case 48:
			goto st74
		}
		goto tr69
	st89:
		if p++; p == pe {
			goto _test_eof89
		}
	st_case_89:
		if data[p] == 14 {
			goto tr101
		}
		goto tr100
	st90:
		if p++; p == pe {
			goto _test_eof90
		}
	st_case_90:
		switch data[p] {
		case 11:
			goto st90
		case 12:
			goto st91
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 27:
			goto st108
		case 28:
			goto st110
		case 29:
			goto st111
		case 30:
			goto st112
		case 31:
			goto st90
		case 32:
			goto st113
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 53:
			goto st115
		case 56:
			goto tr38
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st114
		}
		goto tr135
	st91:
		if p++; p == pe {
			goto _test_eof91
		}
	st_case_91:
		switch data[p] {
		case 1:
			goto st90
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st92:
		if p++; p == pe {
			goto _test_eof92
		}
	st_case_92:
		switch data[p] {
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		}
		goto tr135
	st93:
		if p++; p == pe {
			goto _test_eof93
		}
	st_case_93:
		switch data[p] {
		case 14:
			goto tr11
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		}
		goto tr135
	st94:
		if p++; p == pe {
			goto _test_eof94
		}
	st_case_94:
		switch data[p] {
		case 14:
			goto tr11
		case 25:
			goto st94
		case 26:
			goto st95
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		}
		goto tr135
	st95:
		if p++; p == pe {
			goto _test_eof95
		}
	st_case_95:
		switch data[p] {
		case 14:
			goto tr11
		case 26:
			goto st95
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		}
		goto tr135
	st96:
		if p++; p == pe {
			goto _test_eof96
		}
	st_case_96:
		switch data[p] {
		case 14:
			goto tr11
		case 45:
			goto st96
		case 46:
			goto st97
		}
		goto tr135
	st97:
		if p++; p == pe {
			goto _test_eof97
		}
	st_case_97:
		switch data[p] {
		case 14:
			goto tr11
		case 46:
			goto st97
		}
		goto tr135
tr35:
//line NONE:1
te = p+1

//line use_machine.rl:133
act = 8;
	goto st98
tr38:
//line NONE:1
te = p+1

//line use_machine.rl:134
act = 9;
	goto st98
	st98:
		if p++; p == pe {
			goto _test_eof98
		}
	st_case_98:
//line use_machine_ragel.go:3504
		if data[p] == 14 {
			goto tr11
		}
		goto tr137
	st99:
		if p++; p == pe {
			goto _test_eof99
		}
	st_case_99:
		switch data[p] {
		case 14:
			goto tr11
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		}
		goto tr135
	st100:
		if p++; p == pe {
			goto _test_eof100
		}
	st_case_100:
		switch data[p] {
		case 14:
			goto tr11
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		}
		goto tr135
	st101:
		if p++; p == pe {
			goto _test_eof101
		}
	st_case_101:
		switch data[p] {
		case 14:
			goto tr11
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		}
		goto tr135
	st102:
		if p++; p == pe {
			goto _test_eof102
		}
	st_case_102:
		switch data[p] {
		case 1:
			goto st103
		case 14:
			goto tr11
		}
		goto tr135
	st103:
		if p++; p == pe {
			goto _test_eof103
		}
	st_case_103:
		switch data[p] {
		case 14:
			goto tr11
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		}
		goto tr135
	st104:
		if p++; p == pe {
			goto _test_eof104
		}
	st_case_104:
		switch data[p] {
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st105:
		if p++; p == pe {
			goto _test_eof105
		}
	st_case_105:
		switch data[p] {
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st106:
		if p++; p == pe {
			goto _test_eof106
		}
	st_case_106:
		switch data[p] {
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st107:
		if p++; p == pe {
			goto _test_eof107
		}
	st_case_107:
		switch data[p] {
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st108:
		if p++; p == pe {
			goto _test_eof108
		}
	st_case_108:
		switch data[p] {
		case 12:
			goto st109
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 28:
			goto st110
		case 29:
			goto st111
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st109:
		if p++; p == pe {
			goto _test_eof109
		}
	st_case_109:
		switch data[p] {
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st110:
		if p++; p == pe {
			goto _test_eof110
		}
	st_case_110:
		switch data[p] {
		case 12:
			goto st109
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 29:
			goto st111
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st111:
		if p++; p == pe {
			goto _test_eof111
		}
	st_case_111:
		switch data[p] {
		case 12:
			goto st109
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st112:
		if p++; p == pe {
			goto _test_eof112
		}
	st_case_112:
		switch data[p] {
		case 12:
			goto st109
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 27:
			goto st108
		case 28:
			goto st110
		case 29:
			goto st111
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		case 53:
			goto st92
		}
		goto tr135
	st113:
		if p++; p == pe {
			goto _test_eof113
		}
	st_case_113:
		switch data[p] {
		case 11:
			goto st90
		case 12:
			goto st91
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 27:
			goto st108
		case 28:
			goto st110
		case 29:
			goto st111
		case 30:
			goto st112
		case 32:
			goto st113
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 53:
			goto st115
		case 56:
			goto tr38
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st114
		}
		goto tr135
	st114:
		if p++; p == pe {
			goto _test_eof114
		}
	st_case_114:
		switch data[p] {
		case 1:
			goto st90
		case 14:
			goto tr11
		}
		goto tr135
	st115:
		if p++; p == pe {
			goto _test_eof115
		}
	st_case_115:
		switch data[p] {
		case 1:
			goto st90
		case 14:
			goto tr11
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 48:
			goto st102
		}
		goto tr135
	st116:
		if p++; p == pe {
			goto _test_eof116
		}
	st_case_116:
		switch data[p] {
		case 4:
			goto st117
		case 14:
			goto tr11
		}
		goto tr135
	st117:
		if p++; p == pe {
			goto _test_eof117
		}
	st_case_117:
		switch data[p] {
		case 13:
			goto st116
		case 14:
			goto tr11
		}
		goto tr135
	st118:
		if p++; p == pe {
			goto _test_eof118
		}
	st_case_118:
		switch data[p] {
		case 1:
			goto st31
		case 5:
			goto st31
		case 11:
			goto st90
		case 12:
			goto st91
		case 13:
			goto st116
		case 14:
			goto tr11
		case 22:
			goto st104
		case 23:
			goto st92
		case 24:
			goto st93
		case 25:
			goto st94
		case 26:
			goto st95
		case 27:
			goto st108
		case 28:
			goto st110
		case 29:
			goto st111
		case 30:
			goto st112
		case 31:
			goto st90
		case 32:
			goto st113
		case 33:
			goto st105
		case 34:
			goto st106
		case 35:
			goto st107
		case 37:
			goto st99
		case 38:
			goto st100
		case 39:
			goto st101
		case 41:
			goto st119
		case 42:
			goto st120
		case 45:
			goto st96
		case 46:
			goto st97
		case 47:
			goto tr38
		case 53:
			goto st115
		case 56:
			goto tr38
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st114
		}
		goto tr135
	st119:
		if p++; p == pe {
			goto _test_eof119
		}
	st_case_119:
		switch data[p] {
		case 14:
			goto tr11
		case 41:
			goto st119
		case 42:
			goto st120
		}
		goto tr135
	st120:
		if p++; p == pe {
			goto _test_eof120
		}
	st_case_120:
		switch data[p] {
		case 14:
			goto tr11
		case 42:
			goto st120
		}
		goto tr135
	st121:
		if p++; p == pe {
			goto _test_eof121
		}
	st_case_121:
		switch data[p] {
		case 1:
			goto st31
		case 5:
			goto st31
		}
		goto tr141
	st122:
		if p++; p == pe {
			goto _test_eof122
		}
	st_case_122:
		switch data[p] {
		case 14:
			goto tr143
		case 50:
			goto st123
		case 52:
			goto st124
		case 54:
			goto st124
		case 55:
			goto st125
		}
		goto tr142
	st123:
		if p++; p == pe {
			goto _test_eof123
		}
	st_case_123:
		switch data[p] {
		case 14:
			goto tr143
		case 49:
			goto st122
		}
		if 50 <= data[p] && data[p] <= 51 {
			goto st123
		}
		goto tr142
	st124:
		if p++; p == pe {
			goto _test_eof124
		}
	st_case_124:
		switch data[p] {
		case 14:
			goto tr143
		case 50:
			goto st123
		case 52:
			goto st124
		}
		goto tr142
	st125:
		if p++; p == pe {
			goto _test_eof125
		}
	st_case_125:
		switch data[p] {
		case 14:
			goto tr143
		case 50:
			goto st123
		case 52:
			goto st124
		case 54:
			goto st124
		}
		goto tr142
tr36:
//line NONE:1
te = p+1

	goto st126
	st126:
		if p++; p == pe {
			goto _test_eof126
		}
	st_case_126:
//line use_machine_ragel.go:4318
		switch data[p] {
		case 11:
			goto st3
		case 12:
			goto st4
		case 14:
			goto tr42
		case 22:
			goto st17
		case 23:
			goto st5
		case 24:
			goto st6
		case 25:
			goto st7
		case 26:
			goto st8
		case 27:
			goto st21
		case 28:
			goto st23
		case 29:
			goto st24
		case 30:
			goto st25
		case 31:
			goto st3
		case 32:
			goto st26
		case 33:
			goto st18
		case 34:
			goto st19
		case 35:
			goto st20
		case 37:
			goto st12
		case 38:
			goto st13
		case 39:
			goto st14
		case 41:
			goto st29
		case 42:
			goto st30
		case 45:
			goto st9
		case 46:
			goto st10
		case 47:
			goto st11
		case 49:
			goto st122
		case 51:
			goto st0
		case 53:
			goto st28
		case 56:
			goto st11
		}
		if 44 <= data[p] && data[p] <= 48 {
			goto st27
		}
		goto tr39
	st0:
		if p++; p == pe {
			goto _test_eof0
		}
	st_case_0:
		switch data[p] {
		case 49:
			goto st122
		case 51:
			goto st0
		}
		goto tr0
	st_out:
	_test_eof1: cs = 1; goto _test_eof
	_test_eof2: cs = 2; goto _test_eof
	_test_eof3: cs = 3; goto _test_eof
	_test_eof4: cs = 4; goto _test_eof
	_test_eof5: cs = 5; goto _test_eof
	_test_eof6: cs = 6; goto _test_eof
	_test_eof7: cs = 7; goto _test_eof
	_test_eof8: cs = 8; goto _test_eof
	_test_eof9: cs = 9; goto _test_eof
	_test_eof10: cs = 10; goto _test_eof
	_test_eof11: cs = 11; goto _test_eof
	_test_eof12: cs = 12; goto _test_eof
	_test_eof13: cs = 13; goto _test_eof
	_test_eof14: cs = 14; goto _test_eof
	_test_eof15: cs = 15; goto _test_eof
	_test_eof16: cs = 16; goto _test_eof
	_test_eof17: cs = 17; goto _test_eof
	_test_eof18: cs = 18; goto _test_eof
	_test_eof19: cs = 19; goto _test_eof
	_test_eof20: cs = 20; goto _test_eof
	_test_eof21: cs = 21; goto _test_eof
	_test_eof22: cs = 22; goto _test_eof
	_test_eof23: cs = 23; goto _test_eof
	_test_eof24: cs = 24; goto _test_eof
	_test_eof25: cs = 25; goto _test_eof
	_test_eof26: cs = 26; goto _test_eof
	_test_eof27: cs = 27; goto _test_eof
	_test_eof28: cs = 28; goto _test_eof
	_test_eof29: cs = 29; goto _test_eof
	_test_eof30: cs = 30; goto _test_eof
	_test_eof31: cs = 31; goto _test_eof
	_test_eof32: cs = 32; goto _test_eof
	_test_eof33: cs = 33; goto _test_eof
	_test_eof34: cs = 34; goto _test_eof
	_test_eof35: cs = 35; goto _test_eof
	_test_eof36: cs = 36; goto _test_eof
	_test_eof37: cs = 37; goto _test_eof
	_test_eof38: cs = 38; goto _test_eof
	_test_eof39: cs = 39; goto _test_eof
	_test_eof40: cs = 40; goto _test_eof
	_test_eof41: cs = 41; goto _test_eof
	_test_eof42: cs = 42; goto _test_eof
	_test_eof43: cs = 43; goto _test_eof
	_test_eof44: cs = 44; goto _test_eof
	_test_eof45: cs = 45; goto _test_eof
	_test_eof46: cs = 46; goto _test_eof
	_test_eof47: cs = 47; goto _test_eof
	_test_eof48: cs = 48; goto _test_eof
	_test_eof49: cs = 49; goto _test_eof
	_test_eof50: cs = 50; goto _test_eof
	_test_eof51: cs = 51; goto _test_eof
	_test_eof52: cs = 52; goto _test_eof
	_test_eof53: cs = 53; goto _test_eof
	_test_eof54: cs = 54; goto _test_eof
	_test_eof55: cs = 55; goto _test_eof
	_test_eof56: cs = 56; goto _test_eof
	_test_eof57: cs = 57; goto _test_eof
	_test_eof58: cs = 58; goto _test_eof
	_test_eof59: cs = 59; goto _test_eof
	_test_eof60: cs = 60; goto _test_eof
	_test_eof61: cs = 61; goto _test_eof
	_test_eof62: cs = 62; goto _test_eof
	_test_eof63: cs = 63; goto _test_eof
	_test_eof64: cs = 64; goto _test_eof
	_test_eof65: cs = 65; goto _test_eof
	_test_eof66: cs = 66; goto _test_eof
	_test_eof67: cs = 67; goto _test_eof
	_test_eof68: cs = 68; goto _test_eof
	_test_eof69: cs = 69; goto _test_eof
	_test_eof70: cs = 70; goto _test_eof
	_test_eof71: cs = 71; goto _test_eof
	_test_eof72: cs = 72; goto _test_eof
	_test_eof73: cs = 73; goto _test_eof
	_test_eof74: cs = 74; goto _test_eof
	_test_eof75: cs = 75; goto _test_eof
	_test_eof76: cs = 76; goto _test_eof
	_test_eof77: cs = 77; goto _test_eof
	_test_eof78: cs = 78; goto _test_eof
	_test_eof79: cs = 79; goto _test_eof
	_test_eof80: cs = 80; goto _test_eof
	_test_eof81: cs = 81; goto _test_eof
	_test_eof82: cs = 82; goto _test_eof
	_test_eof83: cs = 83; goto _test_eof
	_test_eof84: cs = 84; goto _test_eof
	_test_eof85: cs = 85; goto _test_eof
	_test_eof86: cs = 86; goto _test_eof
	_test_eof87: cs = 87; goto _test_eof
	_test_eof88: cs = 88; goto _test_eof
	_test_eof89: cs = 89; goto _test_eof
	_test_eof90: cs = 90; goto _test_eof
	_test_eof91: cs = 91; goto _test_eof
	_test_eof92: cs = 92; goto _test_eof
	_test_eof93: cs = 93; goto _test_eof
	_test_eof94: cs = 94; goto _test_eof
	_test_eof95: cs = 95; goto _test_eof
	_test_eof96: cs = 96; goto _test_eof
	_test_eof97: cs = 97; goto _test_eof
	_test_eof98: cs = 98; goto _test_eof
	_test_eof99: cs = 99; goto _test_eof
	_test_eof100: cs = 100; goto _test_eof
	_test_eof101: cs = 101; goto _test_eof
	_test_eof102: cs = 102; goto _test_eof
	_test_eof103: cs = 103; goto _test_eof
	_test_eof104: cs = 104; goto _test_eof
	_test_eof105: cs = 105; goto _test_eof
	_test_eof106: cs = 106; goto _test_eof
	_test_eof107: cs = 107; goto _test_eof
	_test_eof108: cs = 108; goto _test_eof
	_test_eof109: cs = 109; goto _test_eof
	_test_eof110: cs = 110; goto _test_eof
	_test_eof111: cs = 111; goto _test_eof
	_test_eof112: cs = 112; goto _test_eof
	_test_eof113: cs = 113; goto _test_eof
	_test_eof114: cs = 114; goto _test_eof
	_test_eof115: cs = 115; goto _test_eof
	_test_eof116: cs = 116; goto _test_eof
	_test_eof117: cs = 117; goto _test_eof
	_test_eof118: cs = 118; goto _test_eof
	_test_eof119: cs = 119; goto _test_eof
	_test_eof120: cs = 120; goto _test_eof
	_test_eof121: cs = 121; goto _test_eof
	_test_eof122: cs = 122; goto _test_eof
	_test_eof123: cs = 123; goto _test_eof
	_test_eof124: cs = 124; goto _test_eof
	_test_eof125: cs = 125; goto _test_eof
	_test_eof126: cs = 126; goto _test_eof
	_test_eof0: cs = 0; goto _test_eof

	_test_eof: {}
	if p == eof {
		switch cs {
		case 2:
			goto tr39
		case 3:
			goto tr39
		case 4:
			goto tr39
		case 5:
			goto tr39
		case 6:
			goto tr39
		case 7:
			goto tr39
		case 8:
			goto tr39
		case 9:
			goto tr39
		case 10:
			goto tr39
		case 11:
			goto tr39
		case 12:
			goto tr39
		case 13:
			goto tr39
		case 14:
			goto tr39
		case 15:
			goto tr39
		case 16:
			goto tr39
		case 17:
			goto tr39
		case 18:
			goto tr39
		case 19:
			goto tr39
		case 20:
			goto tr39
		case 21:
			goto tr39
		case 22:
			goto tr39
		case 23:
			goto tr39
		case 24:
			goto tr39
		case 25:
			goto tr39
		case 26:
			goto tr39
		case 27:
			goto tr39
		case 28:
			goto tr39
		case 29:
			goto tr39
		case 30:
			goto tr39
		case 31:
			goto tr69
		case 32:
			goto tr69
		case 33:
			goto tr69
		case 34:
			goto tr69
		case 35:
			goto tr69
		case 36:
			goto tr69
		case 37:
			goto tr69
		case 38:
			goto tr69
		case 39:
			goto tr69
		case 40:
			goto tr69
		case 41:
			goto tr69
		case 42:
			goto tr69
		case 43:
			goto tr96
		case 44:
			goto tr69
		case 45:
			goto tr69
		case 46:
			goto tr69
		case 47:
			goto tr69
		case 48:
			goto tr69
		case 49:
			goto tr69
		case 50:
			goto tr69
		case 51:
			goto tr69
		case 52:
			goto tr69
		case 53:
			goto tr69
		case 54:
			goto tr69
		case 55:
			goto tr100
		case 56:
			goto tr96
		case 57:
			goto tr69
		case 58:
			goto tr100
		case 59:
			goto tr102
		case 60:
			goto tr105
		case 61:
			goto tr69
		case 62:
			goto tr69
		case 63:
			goto tr69
		case 64:
			goto tr69
		case 65:
			goto tr69
		case 66:
			goto tr69
		case 67:
			goto tr69
		case 68:
			goto tr69
		case 69:
			goto tr69
		case 70:
			goto tr69
		case 71:
			goto tr69
		case 72:
			goto tr69
		case 73:
			goto tr69
		case 74:
			goto tr96
		case 75:
			goto tr69
		case 76:
			goto tr69
		case 77:
			goto tr69
		case 78:
			goto tr69
		case 79:
			goto tr69
		case 80:
			goto tr69
		case 81:
			goto tr69
		case 82:
			goto tr69
		case 83:
			goto tr69
		case 84:
			goto tr69
		case 85:
			goto tr69
		case 86:
			goto tr100
		case 87:
			goto tr96
		case 88:
			goto tr69
		case 89:
			goto tr100
		case 90:
			goto tr135
		case 91:
			goto tr135
		case 92:
			goto tr135
		case 93:
			goto tr135
		case 94:
			goto tr135
		case 95:
			goto tr135
		case 96:
			goto tr135
		case 97:
			goto tr135
		case 98:
			goto tr137
		case 99:
			goto tr135
		case 100:
			goto tr135
		case 101:
			goto tr135
		case 102:
			goto tr135
		case 103:
			goto tr135
		case 104:
			goto tr135
		case 105:
			goto tr135
		case 106:
			goto tr135
		case 107:
			goto tr135
		case 108:
			goto tr135
		case 109:
			goto tr135
		case 110:
			goto tr135
		case 111:
			goto tr135
		case 112:
			goto tr135
		case 113:
			goto tr135
		case 114:
			goto tr135
		case 115:
			goto tr135
		case 116:
			goto tr135
		case 117:
			goto tr135
		case 118:
			goto tr135
		case 119:
			goto tr135
		case 120:
			goto tr135
		case 121:
			goto tr141
		case 122:
			goto tr142
		case 123:
			goto tr142
		case 124:
			goto tr142
		case 125:
			goto tr142
		case 126:
			goto tr39
		case 0:
			goto tr0
		}
	}

	}

//line use_machine.rl:201

  _ = cs // Suppress unused variable warning
  _ = foundSyllable // May be unused if no syllables found

  return hasBroken
}
