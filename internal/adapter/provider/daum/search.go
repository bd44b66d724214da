package daum

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/hanjadic/internal/domain"
	"github.com/heartmarshall/hanjadic/internal/provider"
)

// ParseSearch picks the entry for query from a search results page.
//
// Only the first result link is considered. It is accepted when the text from
// its highlighted headword marker onward starts with query; homographs are
// common in this dictionary, so a prefix match is the only one trusted.
// Returns nil, nil when nothing matches.
func ParseSearch(r io.Reader, query string, m *Matchers) (*provider.SearchMatch, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w: %w", domain.ErrUnexpectedStructure, err)
	}

	link := doc.FindMatcher(m.resultLink).First()
	if link.Length() == 0 {
		return nil, nil
	}

	highlighted := strings.TrimLeftFunc(textFromMarker(link, m.headword), unicode.IsSpace)
	if !strings.HasPrefix(highlighted, query) {
		return nil, nil
	}

	href, _ := link.Attr("href")
	id := entryIDFromHref(href)
	if id == "" {
		return nil, nil
	}

	return &provider.SearchMatch{EntryID: id, Headword: strings.TrimSpace(link.Text())}, nil
}

// textFromMarker returns the text of the first marker inside link followed by
// all link text after it in document order.
func textFromMarker(link *goquery.Selection, marker goquery.Matcher) string {
	mark := link.FindMatcher(marker).First()
	if mark.Length() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(mark.Text())
	anchor := link.Nodes[0]
	for n := mark.Nodes[0]; n != nil && n != anchor; n = n.Parent {
		for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
			for _, run := range textRuns(sib) {
				b.WriteString(run)
			}
		}
	}
	return b.String()
}

// entryIDFromHref extracts the wordid parameter from a result link.
func entryIDFromHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(u.Query().Get("wordid"))
}
