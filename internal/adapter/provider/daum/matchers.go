package daum

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Selector sources, also used in structure error messages.
const (
	selResultLink = `a[href*="/word/view.do?wordid="]:has(.txt_emph1)`
	selHeadword   = ".txt_emph1"
	selReading    = ".txt_read"
	selRuby       = ".desc_ruby"
	selReadingEx  = ".desc_ex"
	selRefer      = ".txt_refer.on"
)

// Block class markers in the supplementary examples fragment.
const (
	classPlainExample = "wrap_ex"
	classItemExample  = "item_example"
	classCrossRefer   = "ex_refer"
)

// Matchers holds the compiled selectors for Daum dictionary pages.
// It is immutable after NewMatchers and safe to share between goroutines.
type Matchers struct {
	resultLink goquery.Matcher
	headword   goquery.Matcher
	reading    goquery.Matcher
	ruby       goquery.Matcher
	readingEx  goquery.Matcher
	refer      goquery.Matcher
}

// NewMatchers compiles the selectors. It panics only if a built-in selector is
// malformed, which is a programming error.
func NewMatchers() *Matchers {
	return &Matchers{
		resultLink: cascadia.MustCompile(selResultLink),
		headword:   cascadia.MustCompile(selHeadword),
		reading:    cascadia.MustCompile(selReading),
		ruby:       cascadia.MustCompile(selRuby),
		readingEx:  cascadia.MustCompile(selReadingEx),
		refer:      cascadia.MustCompile(selRefer),
	}
}
