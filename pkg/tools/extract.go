package tools

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// maxMetadataSample bounds the text sample fed to the metadata heuristics.
const maxMetadataSample = 4000

// skippedHTMLTags are containers whose text never belongs to the main
// content.
var skippedHTMLTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"iframe":   true,
	"svg":      true,
}

// ExtractHTML pulls the page title and main text content out of an HTML
// document. Boilerplate containers (navigation, scripts, footers) are
// skipped; block elements become paragraph breaks.
func ExtractHTML(raw []byte) (title, text string, err error) {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse html: %w", err)
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skippedHTMLTags[n.Data] {
				return
			}
			if n.Data == "title" && title == "" && n.FirstChild != nil {
				title = strings.TrimSpace(n.FirstChild.Data)
				return
			}
		case html.TextNode:
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				sb.WriteString(trimmed)
				sb.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlockElement(n.Data) {
			sb.WriteString("\n\n")
		}
	}
	walk(doc)

	text = collapseWhitespace(sb.String())
	return title, text, nil
}

func isBlockElement(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "li", "br", "tr",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre":
		return true
	}
	return false
}

var blankLines = regexp.MustCompile(`\n{3,}`)
var spaceRuns = regexp.MustCompile(`[ \t]{2,}`)

func collapseWhitespace(s string) string {
	s = spaceRuns.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractPDF pulls plain text out of a PDF document.
func ExtractPDF(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n\n")
	}

	text := collapseWhitespace(sb.String())
	if text == "" {
		return "", fmt.Errorf("pdf contained no extractable text")
	}
	return text, nil
}

var (
	doiPattern     = regexp.MustCompile(`\b10\.\d{4,9}/[-._;()/:A-Za-z0-9]+\b`)
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	authorsPattern = regexp.MustCompile(`(?i)\bby\s+([A-Z][A-Za-z.\-]+(?:(?:,|\s+and|\s*&)\s+[A-Z][A-Za-z.\-]+)*)`)
)

// ExtractDocumentMetadata applies heuristics to a text sample to recover
// bibliographic metadata (authors, year, DOI). Best-effort: absent fields
// are simply omitted.
func ExtractDocumentMetadata(text string) map[string]any {
	if len(text) > maxMetadataSample {
		text = text[:maxMetadataSample]
	}

	md := make(map[string]any)
	if m := doiPattern.FindString(text); m != "" {
		md["doi"] = strings.TrimRight(m, ".")
	}
	if m := yearPattern.FindString(text); m != "" {
		md["year"] = m
	}
	if m := authorsPattern.FindStringSubmatch(text); len(m) > 1 {
		var authors []string
		for _, a := range regexp.MustCompile(`,|\s+and\s+|\s*&\s*`).Split(m[1], -1) {
			a = strings.TrimSpace(a)
			if a != "" {
				authors = append(authors, a)
			}
		}
		if len(authors) > 0 {
			md["authors"] = authors
		}
	}
	if len(md) == 0 {
		return nil
	}
	return md
}
