package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText flattens an HTML fragment (outline descriptions and
// prerequisites come as <p> blocks) to paragraphs of plain text. Loose text
// between blocks is kept as a paragraph of its own.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return squash(html)
	}
	var paras []string
	var run strings.Builder
	flush := func() {
		if t := squash(run.String()); t != "" {
			paras = append(paras, t)
		}
		run.Reset()
	}
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if !blockElements[name] {
			run.WriteString(s.Text())
			return
		}
		flush()
		items := s.Find("p, li")
		if name == "p" || name == "li" || items.Length() == 0 {
			run.WriteString(s.Text())
			flush()
			return
		}
		items.Each(func(_ int, item *goquery.Selection) {
			run.WriteString(item.Text())
			flush()
		})
	})
	flush()
	return strings.Join(paras, "\n\n")
}

var blockElements = map[string]bool{
	"p": true, "li": true, "ul": true, "ol": true, "div": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "blockquote": true,
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
