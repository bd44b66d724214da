package provider

// SearchMatch identifies the dictionary entry chosen for a query.
// It only exists when the candidate's headword starts with the query.
type SearchMatch struct {
	EntryID  string
	Headword string
}

// Entry is the parsed result for one dictionary entry: its reading plus
// the ordered description blocks from the supplementary examples page.
type Entry struct {
	Reading string
	Blocks  []Block
}

// BlockKind tags the variant of a description block.
type BlockKind string

const (
	BlockPlainExample   BlockKind = "plain_example"
	BlockPhraseExample  BlockKind = "phrase_example"
	BlockCrossReference BlockKind = "cross_reference"
)

// Block is one description block. The concrete types are PlainExample,
// PhraseExample and CrossReference.
type Block interface {
	Kind() BlockKind
}

// PlainExample is free-form usage text. When the upstream block was followed
// by a continuation element, Text already holds both parts joined by a space.
type PlainExample struct {
	Text string
}

// PhraseExample is a cited phrase with an optional reading and origin.
type PhraseExample struct {
	Phrase  string
	Reading *string
	Source  *string
}

// CrossReference is a "see also" list.
type CrossReference struct {
	Items []string
}

func (PlainExample) Kind() BlockKind   { return BlockPlainExample }
func (PhraseExample) Kind() BlockKind  { return BlockPhraseExample }
func (CrossReference) Kind() BlockKind { return BlockCrossReference }
