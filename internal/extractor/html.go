package extractor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor handles HTML files. h1-h6 tags become heading spans with
// synthetic sizes; paragraph-level content becomes body spans.
type HTMLExtractor struct{}

func (p *HTMLExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &Document{
		Name:     docName(filename),
		PageText: make(map[int]string),
	}

	var pageText strings.Builder
	appendSpan := func(text string, size float64, flags StyleFlags) {
		doc.Spans = append(doc.Spans, Span{
			Text:     text,
			Page:     1,
			FontName: "html",
			Size:     size,
			Flags:    flags,
		})
		if pageText.Len() > 0 {
			pageText.WriteString("\n\n")
		}
		pageText.WriteString(text)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := htmlHeadingLevel(n.Data); level > 0 {
				if t := htmlTextContent(n); t != "" {
					appendSpan(t, headingSizePt(level), FlagBold)
				}
				return // Don't recurse into heading children.
			}

			// Skip non-content elements.
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				if t := htmlTextContent(n); t != "" {
					appendSpan(t, bodySizePt, 0)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	if pageText.Len() > 0 {
		doc.PageText[1] = pageText.String()
	}

	return doc, nil
}

func htmlHeadingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func htmlTextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
