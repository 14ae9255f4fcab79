package relevance

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRefine_TopNAndMinLength(t *testing.T) {
	long := strings.Repeat("relevant sentence content here. ", 10)
	ranked := []ScoredSection{
		{Score: 9.0, Rank: 1},
		{Score: 8.0, Rank: 2},
		{Score: 7.0, Rank: 3},
	}
	ranked[0].DocName = "a.pdf"
	ranked[0].Title = "Findings"
	ranked[0].Page = 2
	ranked[0].Text = long
	ranked[1].Text = "too short" // refines below the minimum
	ranked[2].Text = long

	subs := Refine(ranked, 2)
	if len(subs) != 1 {
		t.Fatalf("expected 1 subsection (topN=2, one too short), got %d", len(subs))
	}
	got := subs[0]
	if got.DocName != "a.pdf" || got.SectionTitle != "Findings" || got.Page != 2 || got.Rank != 1 {
		t.Errorf("subsection fields not carried over: %+v", got)
	}
}

func TestRefine_DefaultTopN(t *testing.T) {
	text := strings.Repeat("useful analysis of observed behavior. ", 3)
	ranked := make([]ScoredSection, 20)
	for i := range ranked {
		ranked[i].Text = text
		ranked[i].Rank = i + 1
	}

	subs := Refine(ranked, 0)
	if len(subs) != DefaultTopSections {
		t.Errorf("expected %d subsections with default topN, got %d", DefaultTopSections, len(subs))
	}
}

func TestRefineText_StripsBoilerplate(t *testing.T) {
	in := "Page 7 The study found significant growth. 3 of 12 Results were consistent across regions and time periods."
	got := refineText(in)

	if strings.Contains(strings.ToLower(got), "page 7") {
		t.Errorf("page-number boilerplate not stripped: %q", got)
	}
	if strings.Contains(got, "3 of 12") {
		t.Errorf("page-of boilerplate not stripped: %q", got)
	}
	if !strings.Contains(got, "The study found significant growth.") {
		t.Errorf("content lost during cleaning: %q", got)
	}
}

func TestRefineText_RemovesUnsafeCharsKeepsAccents(t *testing.T) {
	got := refineText("résumé of findings • with bullets ● and métodos §4")
	if strings.ContainsAny(got, "•●§") {
		t.Errorf("decorative characters survived: %q", got)
	}
	if !strings.Contains(got, "résumé") || !strings.Contains(got, "métodos") {
		t.Errorf("accented letters must survive: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestRefineText_TruncatesAtSentenceBoundary(t *testing.T) {
	sentence := "This sentence is repeated to build a long passage of text. "
	in := strings.Repeat(sentence, 30)

	got := refineText(in)
	if len(got) > maxRefinedChars {
		t.Errorf("refined text exceeds cap: %d chars", len(got))
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("expected sentence-boundary cut, got tail %q", got[len(got)-10:])
	}
	if strings.HasSuffix(got, "...") {
		t.Error("ellipsis fallback used despite available sentence boundary")
	}
}

func TestRefineText_EllipsisWhenNoSentenceBoundary(t *testing.T) {
	in := strings.Repeat("word ", 400) // no periods at all
	got := refineText(in)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis fallback, got tail %q", got[len(got)-10:])
	}
}

func TestRefineText_CapCountsCharacters(t *testing.T) {
	// 600 characters of two-byte runes: over 1000 bytes but well under the
	// character cap, so the text must pass through untouched.
	in := strings.Repeat("é", 600)
	if got := refineText(in); got != in {
		t.Errorf("600-character text truncated to %d characters", utf8.RuneCountInString(got))
	}

	long := strings.Repeat("文", maxRefinedChars+200)
	got := refineText(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatal("expected ellipsis fallback on over-long text")
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n != maxRefinedChars {
		t.Errorf("expected cut at %d characters, got %d", maxRefinedChars, n)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation produced invalid UTF-8")
	}
}

func TestRefine_MinLengthCountsCharacters(t *testing.T) {
	ranked := []ScoredSection{{}, {}}
	ranked[0].Text = strings.Repeat("文", MinRefinedChars-10) // 40 chars, 120 bytes
	ranked[1].Text = strings.Repeat("文", MinRefinedChars)

	subs := Refine(ranked, 2)
	if len(subs) != 1 {
		t.Fatalf("expected only the %d-character text to survive, got %d subsections", MinRefinedChars, len(subs))
	}
	if utf8.RuneCountInString(subs[0].RefinedText) != MinRefinedChars {
		t.Errorf("wrong section survived: %q", subs[0].RefinedText)
	}
}

func TestRefineText_Empty(t *testing.T) {
	if got := refineText(""); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}
