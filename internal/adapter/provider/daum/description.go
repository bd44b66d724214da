package daum

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/heartmarshall/hanjadic/internal/domain"
	"github.com/heartmarshall/hanjadic/internal/provider"
)

const nbsp = "\u00a0"

// ParseDescription turns the supplementary examples fragment into description
// blocks.
//
// The fragment is a list of wrapper elements whose children carry the content.
// Content elements are classified by their class attribute; elements with an
// unknown class are skipped. A plain example consumes the element after it as
// its continuation.
func ParseDescription(r io.Reader, m *Matchers) ([]provider.Block, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse supplement: %w: %w", domain.ErrUnexpectedStructure, err)
	}

	content := doc.Find("body").Children().Children()
	blocks := make([]provider.Block, 0, content.Length())

	for i := 0; i < content.Length(); i++ {
		el := content.Eq(i)
		class, _ := el.Attr("class")

		switch strings.TrimSpace(class) {
		case classPlainExample:
			text := trimmedText(el)
			if i+1 < content.Length() {
				i++
				text += " " + trimmedText(content.Eq(i))
			}
			blocks = append(blocks, provider.PlainExample{Text: text})

		case classItemExample:
			el.Children().Each(func(_ int, item *goquery.Selection) {
				if b, ok := parsePhraseExample(item, m); ok {
					blocks = append(blocks, b)
				}
			})

		case classCrossRefer:
			refs := el.FindMatcher(m.refer)
			items := make([]string, 0, refs.Length())
			refs.Each(func(_ int, ref *goquery.Selection) {
				items = append(items, trimmedText(ref))
			})
			blocks = append(blocks, provider.CrossReference{Items: items})
		}
	}

	return blocks, nil
}

// parsePhraseExample reads one list item of an item_example block.
// Items without a ruby annotation are not examples.
func parsePhraseExample(item *goquery.Selection, m *Matchers) (provider.PhraseExample, bool) {
	ruby := item.FindMatcher(m.ruby).First()
	if ruby.Length() == 0 {
		return provider.PhraseExample{}, false
	}

	phrase, source := splitRuby(ruby.Nodes[0])
	ex := provider.PhraseExample{
		Phrase: strings.TrimSpace(phrase),
		Source: source,
	}

	if reading := item.FindMatcher(m.readingEx).First(); reading.Length() > 0 {
		r := trimmedText(reading)
		ex.Reading = &r
	}
	return ex, true
}

// splitRuby separates a ruby annotation into its phrase and citation.
// A text run that both starts and ends with a non-breaking space is the
// citation (the last one wins); every other run joins the phrase in document
// order. A run of only non-breaking spaces is an empty citation.
func splitRuby(n *html.Node) (phrase string, source *string) {
	var b strings.Builder
	for _, run := range textRuns(n) {
		if isCitation(run) {
			s := strings.TrimSpace(run)
			source = &s
			continue
		}
		b.WriteString(run)
	}
	return b.String(), source
}

func isCitation(run string) bool {
	return strings.HasPrefix(run, nbsp) && strings.HasSuffix(run, nbsp)
}

// textRuns returns the descendant text nodes of n in document order.
func textRuns(n *html.Node) []string {
	var runs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && n.Data != "" {
			runs = append(runs, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return runs
}

func trimmedText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
