package graph

import (
	"path"
	"strings"
)

// categoryRule maps path patterns to a category. Rules are evaluated top to
// bottom and the first match wins; a path matching none falls through to
// CategoryOther.
type categoryRule struct {
	category Category
	segments []string // directory segments matched anywhere in the path
	prefixes []string // basename prefixes
	suffixes []string // basename suffixes
}

var categoryRules = []categoryRule{
	{category: CategoryPage, segments: []string{"pages/", "app/"}},
	{category: CategoryComponent, segments: []string{"components/"}},
	{category: CategoryUtil, segments: []string{"utils/", "util/"}},
	{category: CategoryLibrary, segments: []string{"lib/", "libs/"}},
	{category: CategoryHook, segments: []string{"hooks/"}, prefixes: []string{"use"}},
	{category: CategoryType, segments: []string{"types/"}, suffixes: []string{".d.ts", ".d.tsx"}},
	{category: CategoryAPI, segments: []string{"api/"}},
}

// knownCategories is the set of categories an upstream descriptor may name
// explicitly.
var knownCategories = map[Category]bool{
	CategoryPage:      true,
	CategoryComponent: true,
	CategoryUtil:      true,
	CategoryLibrary:   true,
	CategoryHook:      true,
	CategoryType:      true,
	CategoryAPI:       true,
	CategoryOther:     true,
}

// ResolveCategory picks the category for a file node: an explicit, known
// category from the descriptor wins, otherwise the category is inferred
// from the path.
func ResolveCategory(id, explicit string) Category {
	if explicit != "" && knownCategories[Category(explicit)] {
		return Category(explicit)
	}
	return InferCategory(id)
}

// InferCategory classifies a path by testing the ordered rule table.
func InferCategory(id string) Category {
	normalized := strings.ReplaceAll(id, "\\", "/")
	base := path.Base(normalized)

	for _, rule := range categoryRules {
		for _, seg := range rule.segments {
			if strings.Contains(normalized, seg) {
				return rule.category
			}
		}
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(base, prefix) {
				return rule.category
			}
		}
		for _, suffix := range rule.suffixes {
			if strings.HasSuffix(base, suffix) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
