// Package category canonicalizes the free-text category cells that come out
// of OCR and PDF extraction, e.g. "food", "FOOD " or "Fod" → "Food".
package category

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultCategories is the canonical category list used when no custom set
// is configured.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Utilities",
	"Entertainment",
	"Health",
	"Shopping",
	"Salary",
	"Travel",
	"Education",
	"Other",
}

// Normalizer maps raw category text onto a canonical category list using
// fuzzy matching. It never invents a category: when nothing matches, the
// trimmed raw text is kept as-is.
type Normalizer struct {
	names []string
}

// NewNormalizer builds a normalizer over the given category names, falling
// back to DefaultCategories when none are provided.
func NewNormalizer(names ...string) *Normalizer {
	if len(names) == 0 {
		names = DefaultCategories
	}
	return &Normalizer{names: names}
}

// Canonical returns the closest canonical category for raw, or raw itself
// (trimmed) when no category is close enough.
func (n *Normalizer) Canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}

	matches := fuzzy.RankFindNormalizedFold(raw, n.names)
	if len(matches) == 0 {
		return raw
	}
	sort.Sort(matches)
	return matches[0].Target
}
