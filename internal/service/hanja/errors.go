package hanja

import (
	"fmt"

	"github.com/heartmarshall/hanjadic/internal/domain"
)

// ErrNoResult indicates the search page had no entry whose headword starts
// with the query.
var ErrNoResult = fmt.Errorf("no dictionary entry matches the query: %w", domain.ErrNotFound)
