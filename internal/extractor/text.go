package extractor

import (
	"bufio"
	"io"
	"strings"
)

// TextExtractor handles plain text files. Every paragraph becomes a body-size
// span; heading recovery is left entirely to the lexical heuristics.
type TextExtractor struct{}

func (p *TextExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &Document{
		Name:     docName(filename),
		PageText: make(map[int]string),
	}

	for _, para := range paragraphs {
		doc.Spans = append(doc.Spans, Span{
			Text:     para,
			Page:     1,
			FontName: "text",
			Size:     bodySizePt,
		})
	}
	if len(paragraphs) > 0 {
		doc.PageText[1] = strings.Join(paragraphs, "\n\n")
	}

	return doc, nil
}
