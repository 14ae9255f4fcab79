package extractor

import (
	"fmt"
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "*extractor.PDFExtractor"},
		{"Report.PDF", "*extractor.PDFExtractor"},
		{"notes.docx", "*extractor.DOCXExtractor"},
		{"readme.md", "*extractor.MarkdownExtractor"},
		{"readme.markdown", "*extractor.MarkdownExtractor"},
		{"index.html", "*extractor.HTMLExtractor"},
		{"index.htm", "*extractor.HTMLExtractor"},
		{"plain.txt", "*extractor.TextExtractor"},
	}
	for _, tc := range cases {
		ex, err := ForFile(tc.filename)
		if err != nil {
			t.Errorf("ForFile(%q): %v", tc.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", ex); got != tc.want {
			t.Errorf("ForFile(%q) = %s, want %s", tc.filename, got, tc.want)
		}
	}

	if _, err := ForFile("image.png"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.pdf") || !IsSupportedExtension("b.MD") {
		t.Error("expected pdf and md to be supported")
	}
	if IsSupportedExtension("c.exe") || IsSupportedExtension("noext") {
		t.Error("unexpected support for exe or extensionless names")
	}
}

func TestTextExtractor(t *testing.T) {
	input := "First paragraph line one\nline two\n\n\nSecond paragraph\n"
	doc, err := (&TextExtractor{}).Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatal(err)
	}

	if doc.Name != "notes" {
		t.Errorf("expected doc name notes, got %q", doc.Name)
	}
	if len(doc.Spans) != 2 {
		t.Fatalf("expected 2 paragraph spans, got %d", len(doc.Spans))
	}
	if doc.Spans[0].Text != "First paragraph line one\nline two" {
		t.Errorf("unexpected first paragraph %q", doc.Spans[0].Text)
	}
	for _, s := range doc.Spans {
		if s.Size != bodySizePt || s.Page != 1 {
			t.Errorf("text spans must be body-size on page 1: %+v", s)
		}
	}
	if !strings.Contains(doc.TextForPage(1), "Second paragraph") {
		t.Errorf("page text incomplete: %q", doc.TextForPage(1))
	}
}

func TestMarkdownExtractor(t *testing.T) {
	input := `# Project Overview

Some introductory prose.

## Detailed Design

More body content here.
`
	doc, err := (&MarkdownExtractor{}).Extract(strings.NewReader(input), "design.md")
	if err != nil {
		t.Fatal(err)
	}

	var headings, bodies []Span
	for _, s := range doc.Spans {
		if s.IsBold() {
			headings = append(headings, s)
		} else {
			bodies = append(bodies, s)
		}
	}

	if len(headings) != 2 {
		t.Fatalf("expected 2 heading spans, got %d: %+v", len(headings), headings)
	}
	if headings[0].Text != "Project Overview" || headings[0].Size != headingSizePt(1) {
		t.Errorf("unexpected h1 span %+v", headings[0])
	}
	if headings[1].Text != "Detailed Design" || headings[1].Size != headingSizePt(2) {
		t.Errorf("unexpected h2 span %+v", headings[1])
	}

	if len(bodies) != 2 {
		t.Fatalf("expected 2 body spans, got %d: %+v", len(bodies), bodies)
	}
	if bodies[0].Text != "Some introductory prose." {
		t.Errorf("unexpected body span %q", bodies[0].Text)
	}
	if strings.Count(doc.TextForPage(1), "Some introductory prose.") != 1 {
		t.Errorf("body text duplicated in page text: %q", doc.TextForPage(1))
	}
}

func TestHTMLExtractor(t *testing.T) {
	input := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body>
<nav>skip this navigation</nav>
<h1>Getting Started</h1>
<p>Welcome to the guide.</p>
<h2>Installation</h2>
<p>Run the installer.</p>
<script>console.log("skip")</script>
</body></html>`

	doc, err := (&HTMLExtractor{}).Extract(strings.NewReader(input), "guide.html")
	if err != nil {
		t.Fatal(err)
	}

	texts := make([]string, 0, len(doc.Spans))
	for _, s := range doc.Spans {
		texts = append(texts, s.Text)
	}
	joined := strings.Join(texts, "|")

	if !strings.Contains(joined, "Getting Started") || !strings.Contains(joined, "Installation") {
		t.Errorf("headings missing from spans: %q", joined)
	}
	if !strings.Contains(joined, "Welcome to the guide.") {
		t.Errorf("paragraph missing from spans: %q", joined)
	}
	if strings.Contains(joined, "skip this navigation") || strings.Contains(joined, "console.log") {
		t.Errorf("non-content elements leaked into spans: %q", joined)
	}

	for _, s := range doc.Spans {
		if s.Text == "Getting Started" {
			if s.Size != headingSizePt(1) || !s.IsBold() {
				t.Errorf("h1 span must be bold at h1 size: %+v", s)
			}
		}
		if s.Text == "Welcome to the guide." && s.Size != bodySizePt {
			t.Errorf("paragraph span must be body size: %+v", s)
		}
	}
}

func TestFontFlags(t *testing.T) {
	cases := []struct {
		font string
		want StyleFlags
	}{
		{"Helvetica", 0},
		{"Helvetica-Bold", FlagBold},
		{"ABCDEF+TimesNewRoman,Italic", FlagItalic},
		{"Arial-BoldOblique", FlagBold | FlagItalic},
		{"Roboto-Black", FlagBold},
		{"", 0},
	}
	for _, tc := range cases {
		if got := fontFlags(tc.font); got != tc.want {
			t.Errorf("fontFlags(%q) = %b, want %b", tc.font, got, tc.want)
		}
	}
}

func TestDocumentTextForPage(t *testing.T) {
	doc := &Document{PageText: map[int]string{1: "hello"}}
	if doc.TextForPage(1) != "hello" {
		t.Error("expected page 1 text")
	}
	if doc.TextForPage(2) != "" {
		t.Error("missing page must return empty text")
	}
}
