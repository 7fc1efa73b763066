package token

import "unicode"

// RunClass is the character class of a run of text.
type RunClass int

const (
	RunHangul RunClass = iota
	RunHanja
	RunLatin
	RunDigit
	RunOther
)

// Run is a maximal run of non-whitespace characters of one class.
type Run struct {
	Text  string
	Start int // byte offset
	End   int
	Class RunClass
}

func classOf(r rune) RunClass {
	switch {
	case IsHangul(r):
		return RunHangul
	case IsHanja(r):
		return RunHanja
	case unicode.IsDigit(r):
		return RunDigit
	case unicode.IsLetter(r):
		return RunLatin
	}
	return RunOther
}

// Runs splits s into non-whitespace runs, breaking at whitespace and
// at character-class boundaries. Offsets are byte positions into s.
func Runs(s string) []Run {
	var runs []Run
	start := -1
	var class RunClass

	flush := func(end int) {
		if start >= 0 {
			runs = append(runs, Run{Text: s[start:end], Start: start, End: end, Class: class})
			start = -1
		}
	}

	for i, r := range s {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		c := classOf(r)
		if start >= 0 && c != class {
			flush(i)
		}
		if start < 0 {
			start = i
			class = c
		}
	}
	flush(len(s))

	return runs
}
