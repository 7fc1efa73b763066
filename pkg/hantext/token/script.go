package token

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IsHangul reports whether r is a Hangul syllable or jamo.
func IsHangul(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7A3: // syllable blocks
		return true
	case r >= 0x1100 && r <= 0x11FF: // jamo
		return true
	case r >= 0x3130 && r <= 0x318F: // compatibility jamo
		return true
	case r >= 0xA960 && r <= 0xA97F: // jamo extended-A
		return true
	case r >= 0xD7B0 && r <= 0xD7FF: // jamo extended-B
		return true
	}
	return false
}

// IsHanja reports whether r is a CJK ideograph as used in Korean text.
func IsHanja(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // unified ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // extension A
		return true
	case r >= 0xF900 && r <= 0xFAFF: // compatibility ideographs
		return true
	}
	return false
}

// NFC returns s in Unicode normalization form C. Korean input arrives
// in both composed and decomposed forms depending on the source OS;
// all pipeline offsets refer to the NFC form.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// KoreanRatio returns the fraction of non-whitespace characters that
// are Hangul. Returns 0 for empty or whitespace-only input.
func KoreanRatio(s string) float64 {
	var hangul, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if IsHangul(r) {
			hangul++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hangul) / float64(total)
}

// HanjaRatio returns the fraction of non-whitespace characters that
// are CJK ideographs.
func HanjaRatio(s string) float64 {
	var hanja, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if IsHanja(r) {
			hanja++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hanja) / float64(total)
}
