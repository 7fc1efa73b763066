package token

// Token is a single unit of analyzed text. Start and End are byte
// offsets into the normalized input text, so Surface == text[Start:End].
// Tokens produced for one input are ordered and non-overlapping.
type Token struct {
	Surface string
	Lemma   string // root form, empty when the backend provides none
	Tag     string // backend-defined POS tag; "UNK" from the heuristic path
	Start   int
	End     int
}

// TagUnknown is the tag assigned by the heuristic tokenizer, which has
// no morphological knowledge.
const TagUnknown = "UNK"

// Root returns the lemma when present, otherwise the surface form.
func (t Token) Root() string {
	if t.Lemma != "" {
		return t.Lemma
	}
	return t.Surface
}
