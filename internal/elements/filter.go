package elements

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter removes node records whose id matches any of the given glob
// patterns, along with every edge touching a removed node. Patterns use
// doublestar syntax (** supported) and are tested against the slash-normalized
// id and against its basename. Empty patterns return the input unchanged.
func Filter(elems []Element, ignore []string) []Element {
	if len(ignore) == 0 {
		return elems
	}

	removed := make(map[string]bool)
	kept := make([]Element, 0, len(elems))

	for _, el := range elems {
		if el.Data.IsEdge() {
			continue
		}
		if matchesAny(el.Data.ID, ignore) {
			removed[el.Data.ID] = true
		}
	}

	for _, el := range elems {
		if el.Data.IsEdge() {
			if removed[el.Data.Source] || removed[el.Data.Target] {
				continue
			}
		} else if removed[el.Data.ID] {
			continue
		}
		kept = append(kept, el)
	}
	return kept
}

// matchesAny checks if path matches any of the given glob patterns.
func matchesAny(path string, patterns []string) bool {
	normalized := filepath.ToSlash(path)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
