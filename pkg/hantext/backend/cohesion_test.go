package backend

import "testing"

func testCohesion(t *testing.T) *Cohesion {
	t.Helper()
	c, err := NewCohesion(CohesionStats{Counts: map[string]int64{
		"데":    120,
		"데이":   100,
		"데이터":  95,
		"데이터가": 10,
		"학":    200,
		"학습":   150,
		"학습이":  20,
	}})
	if err != nil {
		t.Fatalf("NewCohesion: %v", err)
	}
	return c
}

func TestCohesionNouns(t *testing.T) {
	c := testCohesion(t)

	nouns, err := c.Nouns("데이터가 학습이 중요하다")
	if err != nil {
		t.Fatalf("Nouns: %v", err)
	}

	got := make(map[string]bool)
	for _, n := range nouns {
		got[n.Surface] = true
	}
	if !got["데이터"] {
		t.Errorf("expected 데이터 as a noun candidate, got %v", nouns)
	}
	if !got["학습"] {
		t.Errorf("expected 학습 as a noun candidate, got %v", nouns)
	}
}

func TestCohesionPrefersCohesiveFragment(t *testing.T) {
	c := testCohesion(t)

	// 데이터가: count barely drops through 데이터 (95/120) but
	// collapses at 데이터가 (10), so 데이터 wins.
	nouns, err := c.Nouns("데이터가")
	if err != nil {
		t.Fatalf("Nouns: %v", err)
	}
	if len(nouns) != 1 || nouns[0].Surface != "데이터" {
		t.Errorf("nouns = %v, want [데이터]", nouns)
	}
}

func TestCohesionOffsets(t *testing.T) {
	c := testCohesion(t)
	text := "오늘 데이터가"

	nouns, err := c.Nouns(text)
	if err != nil {
		t.Fatalf("Nouns: %v", err)
	}
	for _, n := range nouns {
		if text[n.Start:n.End] != n.Surface {
			t.Errorf("noun %q offsets [%d,%d) map to %q", n.Surface, n.Start, n.End, text[n.Start:n.End])
		}
	}
}

func TestCohesionUnknownEojeol(t *testing.T) {
	c := testCohesion(t)

	nouns, err := c.Nouns("바나나")
	if err != nil {
		t.Fatalf("Nouns: %v", err)
	}
	if len(nouns) != 0 {
		t.Errorf("unseen eojeol should yield no candidates, got %v", nouns)
	}
}

func TestCohesionEmptyStats(t *testing.T) {
	if _, err := NewCohesion(CohesionStats{}); err == nil {
		t.Error("empty stats should fail")
	}
}
