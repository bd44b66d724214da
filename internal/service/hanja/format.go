package hanja

import (
	"strings"

	"github.com/heartmarshall/hanjadic/internal/provider"
)

// DefaultReferMarker prefixes cross-reference lines when none is configured.
const DefaultReferMarker = "※"

const (
	phraseBullet = "> "
	sourceOpen   = " 《"
	sourceClose  = "》"
)

// Formatter renders a parsed entry as short chat text:
//
//	# <query>
//	**<reading>**
//	<one line per block>
type Formatter struct {
	referMarker string
}

// NewFormatter creates a Formatter. An empty marker selects DefaultReferMarker.
func NewFormatter(referMarker string) Formatter {
	if referMarker == "" {
		referMarker = DefaultReferMarker
	}
	return Formatter{referMarker: referMarker}
}

// Format renders entry under a heading for query. It has no side effects;
// an empty reading is rendered as is.
func (f Formatter) Format(query string, entry *provider.Entry) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(query)
	b.WriteString("\n**")
	b.WriteString(strings.TrimSpace(entry.Reading))
	b.WriteString("**\n")
	for _, blk := range entry.Blocks {
		f.writeBlock(&b, blk)
	}
	return b.String()
}

func (f Formatter) writeBlock(b *strings.Builder, blk provider.Block) {
	switch v := blk.(type) {
	case provider.PlainExample:
		b.WriteString(v.Text)

	case provider.PhraseExample:
		b.WriteString(phraseBullet)
		b.WriteString(v.Phrase)
		if v.Reading != nil {
			b.WriteString("(")
			b.WriteString(*v.Reading)
			b.WriteString(")")
		}
		if v.Source != nil {
			b.WriteString(sourceOpen)
			b.WriteString(*v.Source)
			b.WriteString(sourceClose)
		}

	case provider.CrossReference:
		b.WriteString(f.referMarker)
		b.WriteString(" ")
		for _, item := range v.Items {
			b.WriteString(item)
		}

	default:
		return
	}
	b.WriteString("\n")
}
