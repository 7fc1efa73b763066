package tokenize

import "github.com/cognicore/hantext/pkg/hantext/token"

// Heuristic tokenizes without any backend: whitespace-delimited words
// are split further at character-class boundaries (Hangul, Hanja,
// Latin, digits, punctuation), and every token is tagged UNK. Token
// surfaces are exact substrings of the input, so the round-trip
// invariant holds by construction.
func Heuristic(text string) []token.Token {
	runs := token.Runs(text)
	if len(runs) == 0 {
		return nil
	}
	out := make([]token.Token, len(runs))
	for i, run := range runs {
		out[i] = token.Token{
			Surface: run.Text,
			Tag:     token.TagUnknown,
			Start:   run.Start,
			End:     run.End,
		}
	}
	return out
}
