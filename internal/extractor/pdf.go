package extractor

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor handles PDF files via ledongthuc/pdf. Styled spans come from
// the page content streams; plain page text comes from GetPlainText.
type PDFExtractor struct{}

func (p *PDFExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsift-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &Document{
		Name:     docName(filename),
		PageText: make(map[int]string),
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		doc.Spans = append(doc.Spans, pageSpans(page, i)...)

		// Page text failures are non-fatal: the page simply has no text.
		if text, err := page.GetPlainText(nil); err == nil {
			doc.PageText[i] = strings.TrimSpace(text)
		}
	}

	return doc, nil
}

// pageSpans merges the raw positioned text fragments of one page into spans.
// Fragments sharing a baseline, font, and size belong to the same span; a
// horizontal gap wider than one point becomes a space.
func pageSpans(page pdflib.Page, pageNum int) (spans []Span) {
	defer func() {
		// Malformed content streams can panic inside the library; keep
		// whatever spans were already merged for this page.
		_ = recover()
	}()

	content := page.Content()
	var cur *Span
	var lastEndX float64

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(cur.Text)
		if cur.Text != "" {
			spans = append(spans, *cur)
		}
		cur = nil
	}

	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		sameRun := cur != nil &&
			t.Font == cur.FontName &&
			t.FontSize == cur.Size &&
			math.Abs(t.Y-cur.BBox.Y0) < 0.5
		if !sameRun {
			flush()
			cur = &Span{
				Page:     pageNum,
				FontName: t.Font,
				Size:     t.FontSize,
				Flags:    fontFlags(t.Font),
				BBox:     BBox{X0: t.X, Y0: t.Y, X1: t.X + t.W, Y1: t.Y + t.FontSize},
			}
		} else if t.X-lastEndX > 1.0 && !strings.HasSuffix(cur.Text, " ") {
			cur.Text += " "
		}
		cur.Text += t.S
		if t.X+t.W > cur.BBox.X1 {
			cur.BBox.X1 = t.X + t.W
		}
		lastEndX = t.X + t.W
	}
	flush()

	return spans
}

// fontFlags derives style flags from a PDF font name such as
// "Helvetica-BoldOblique" or "ABCDEF+TimesNewRoman,Italic".
func fontFlags(fontName string) StyleFlags {
	name := strings.ToLower(fontName)
	var flags StyleFlags
	if strings.Contains(name, "bold") || strings.Contains(name, "black") || strings.Contains(name, "heavy") {
		flags |= FlagBold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		flags |= FlagItalic
	}
	return flags
}
