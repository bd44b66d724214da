package daum

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/hanjadic/internal/domain"
)

// ExtractReading returns the concatenated text of the first reading field on
// an entry page. The text is returned as is; callers trim for display.
// A page without the field yields a *domain.StructureError.
func ExtractReading(r io.Reader, m *Matchers) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse entry page: %w: %w", domain.ErrUnexpectedStructure, err)
	}

	field := doc.FindMatcher(m.reading).First()
	if field.Length() == 0 {
		return "", &domain.StructureError{Document: "entry page", Selector: selReading}
	}
	return field.Text(), nil
}
