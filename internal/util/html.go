package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from s. Descriptions come back either as plain
// text or as an HTML fragment; plain text passes through with only
// whitespace collapsed per line.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return cleanLines(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return cleanLines(s)
	}

	// keep paragraph structure readable in a terminal
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})
	doc.Find("script, style").Remove()

	return cleanLines(doc.Text())
}

func cleanLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if l := CleanText(line); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
