package backend

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/hantext/pkg/hantext/internalerr"
	"github.com/cognicore/hantext/pkg/hantext/token"
)

// MorphDB is the morphological-dictionary backend over a SQLite file.
// The dictionary schema:
//
//	morphemes(surface TEXT PRIMARY KEY, lemma TEXT, tag TEXT)
//	spacing_bigrams(prev TEXT, next TEXT, spaced INTEGER, joined INTEGER,
//	                PRIMARY KEY(prev, next))
//
// The spacing table is optional; without it the backend simply does
// not advertise the spacing capability.
type MorphDB struct {
	db         *sql.DB
	lookupStmt *sql.Stmt
	spacedStmt *sql.Stmt
	maxLen     int // longest surface, in runes
	hasSpacing bool
}

func openMorphDB(path string) (Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("morphdb path not configured: %w", internalerr.ErrBackendUnavailable)
	}
	return OpenMorphDB(path)
}

// OpenMorphDB opens a morpheme dictionary database.
func OpenMorphDB(path string) (*MorphDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	m := &MorphDB{db: db}

	row := db.QueryRow("SELECT COALESCE(MAX(LENGTH(surface)), 0) FROM morphemes")
	if err := row.Scan(&m.maxLen); err != nil {
		db.Close()
		return nil, fmt.Errorf("morphdb schema: %w", err)
	}
	if m.maxLen == 0 {
		db.Close()
		return nil, fmt.Errorf("morphdb has no morphemes")
	}

	m.lookupStmt, err = db.Prepare("SELECT lemma, tag FROM morphemes WHERE surface = ?")
	if err != nil {
		db.Close()
		return nil, err
	}

	// Spacing support depends on the optional bigram table.
	var n int
	err = db.QueryRow("SELECT COUNT(*) FROM spacing_bigrams").Scan(&n)
	if err == nil && n > 0 {
		m.spacedStmt, err = db.Prepare("SELECT spaced, joined FROM spacing_bigrams WHERE prev = ? AND next = ?")
		if err != nil {
			db.Close()
			return nil, err
		}
		m.hasSpacing = true
	}

	return m, nil
}

func (m *MorphDB) Name() string { return "morphdb" }

func (m *MorphDB) Capabilities() []Capability {
	caps := []Capability{CapTokenize, CapPOSTag, CapNounExtract}
	if m.hasSpacing {
		caps = append(caps, CapSpacing)
	}
	return caps
}

// Tokenize runs greedy longest-match segmentation against the
// dictionary. Hangul runs decompose into dictionary morphemes;
// characters with no dictionary entry become single-rune UNK tokens.
func (m *MorphDB) Tokenize(text string) ([]token.Token, error) {
	var out []token.Token
	for _, run := range token.Runs(text) {
		if run.Class != token.RunHangul {
			out = append(out, classToken(run))
			continue
		}
		toks, err := m.segmentEojeol(run)
		if err != nil {
			return nil, err
		}
		out = append(out, toks...)
	}
	return out, nil
}

func classToken(run token.Run) token.Token {
	tag := "SP"
	switch run.Class {
	case token.RunHanja:
		tag = "SH"
	case token.RunLatin:
		tag = "SL"
	case token.RunDigit:
		tag = "SN"
	}
	return token.Token{Surface: run.Text, Tag: tag, Start: run.Start, End: run.End}
}

func (m *MorphDB) segmentEojeol(run token.Run) ([]token.Token, error) {
	var out []token.Token
	runes := []rune(run.Text)
	pos := 0         // rune index
	off := run.Start // byte offset of runes[pos]

	for pos < len(runes) {
		matched := false
		limit := m.maxLen
		if limit > len(runes)-pos {
			limit = len(runes) - pos
		}
		for n := limit; n >= 1; n-- {
			surface := string(runes[pos : pos+n])
			var lemma, tag string
			err := m.lookupStmt.QueryRow(surface).Scan(&lemma, &tag)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, token.Token{
				Surface: surface,
				Lemma:   lemma,
				Tag:     tag,
				Start:   off,
				End:     off + len(surface),
			})
			pos += n
			off += len(surface)
			matched = true
			break
		}
		if !matched {
			surface := string(runes[pos])
			out = append(out, token.Token{
				Surface: surface,
				Tag:     token.TagUnknown,
				Start:   off,
				End:     off + len(surface),
			})
			pos++
			off += len(surface)
		}
	}
	return out, nil
}

// Nouns tokenizes and keeps noun-tagged morphemes.
func (m *MorphDB) Nouns(text string) ([]token.Token, error) {
	toks, err := m.Tokenize(text)
	if err != nil {
		return nil, err
	}
	var nouns []token.Token
	for _, t := range toks {
		if strings.HasPrefix(t.Tag, "NN") {
			nouns = append(nouns, t)
		}
	}
	return nouns, nil
}

// Space re-inserts spaces into despaced text using the bigram counts:
// a space goes between two characters when the corpus saw them spaced
// more often than joined. Sentence punctuation always breaks.
func (m *MorphDB) Space(despaced string) (string, error) {
	if !m.hasSpacing {
		return "", fmt.Errorf("spacing table not present")
	}

	runes := []rune(despaced)
	var b strings.Builder
	b.Grow(len(despaced) + len(despaced)/4)

	for i, r := range runes {
		b.WriteRune(r)
		if i == len(runes)-1 {
			break
		}
		next := runes[i+1]
		if isSentencePunct(r) && !isSentencePunct(next) {
			b.WriteByte(' ')
			continue
		}
		var spaced, joined int64
		err := m.spacedStmt.QueryRow(string(r), string(next)).Scan(&spaced, &joined)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return "", err
		}
		if spaced > joined {
			b.WriteByte(' ')
		}
	}
	return b.String(), nil
}

func isSentencePunct(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Close releases the database handle. The registry never closes
// backends; this exists for tests and short-lived tools.
func (m *MorphDB) Close() error {
	return m.db.Close()
}
