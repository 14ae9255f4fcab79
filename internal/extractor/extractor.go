package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// StyleFlags is a bitmask of typographic style attributes on a span.
type StyleFlags uint8

const (
	FlagBold StyleFlags = 1 << iota
	FlagItalic
)

// BBox is a span bounding box in page coordinates.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// Span is a contiguous run of uniformly-styled text on one page. It is the
// atomic unit consumed by the outline stage.
type Span struct {
	Text     string
	Page     int // 1-based
	FontName string
	Size     float64 // points
	Flags    StyleFlags
	BBox     BBox
}

// IsBold reports whether the span is rendered bold.
func (s Span) IsBold() bool { return s.Flags&FlagBold != 0 }

// IsItalic reports whether the span is rendered italic.
func (s Span) IsItalic() bool { return s.Flags&FlagItalic != 0 }

// Document is the extraction result for one input file: the ordered styled
// spans plus the plain text of each page, keyed by 1-based page number.
type Document struct {
	Name     string
	Spans    []Span
	PageText map[int]string
}

// TextForPage returns the plain text of a page, or "" if the page is missing
// or its text could not be decoded. Missing pages are not an error.
func (d *Document) TextForPage(page int) string {
	if d == nil || d.PageText == nil {
		return ""
	}
	return d.PageText[page]
}

// Extractor converts raw document bytes into styled spans.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// docName strips the extension from a filename for use as the document name.
func docName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// Synthetic sizes for formats where heading depth is structural rather than
// typographic. Chosen so that, against a 12pt body, the classifier's size
// ratios resolve h1 and h2 to their own levels.
const bodySizePt = 12.0

func headingSizePt(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 18
	case 3:
		return 17
	default:
		return 14
	}
}
