package extractor

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. ATX heading depth
// maps to synthetic span sizes; block content becomes body spans.
type MarkdownExtractor struct{}

func (p *MarkdownExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &Document{
		Name:     docName(filename),
		PageText: make(map[int]string),
	}

	var pageText strings.Builder
	appendText := func(t string) {
		if pageText.Len() > 0 {
			pageText.WriteString("\n\n")
		}
		pageText.WriteString(t)
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title == "" {
				continue
			}
			doc.Spans = append(doc.Spans, Span{
				Text:     title,
				Page:     1,
				FontName: "markdown",
				Size:     headingSizePt(node.Level),
				Flags:    FlagBold,
			})
			appendText(title)

		default:
			t := mdBlockText(n, src)
			if t == "" {
				continue
			}
			doc.Spans = append(doc.Spans, Span{
				Text:     t,
				Page:     1,
				FontName: "markdown",
				Size:     bodySizePt,
			})
			appendText(t)
		}
	}

	if pageText.Len() > 0 {
		doc.PageText[1] = pageText.String()
	}

	return doc, nil
}

// mdBlockText gets the text content of a goldmark AST node.
func mdBlockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}

	// Container blocks such as lists carry no lines of their own.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			childText := mdBlockText(c, src)
			if childText == "" {
				continue
			}
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(childText)
		}
	}
	return strings.TrimSpace(buf.String())
}
