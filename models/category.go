package models

import "strings"

// Category is the classification label assigned to an article by enrichment.
type Category string

// The closed set of categories. Labels are stored exactly as written here.
const (
	Politics   Category = "Política"
	Sports     Category = "Deportes"
	Technology Category = "Tecnología"
	Health     Category = "Salud"
	Economy    Category = "Economía"
	Science    Category = "Ciencia"
	Culture    Category = "Cultura"
	Opinion    Category = "Opinión"

	// Uncategorized is stored for rows that were never enriched.
	Uncategorized Category = ""

	// AllCategories is the wildcard label used by filters. It is never
	// persisted.
	AllCategories Category = "Todas"
)

// Categories returns the closed set in display order.
func Categories() []Category {
	return []Category{Politics, Sports, Technology, Health, Economy, Science, Culture, Opinion}
}

// IsKnown reports whether c belongs to the closed set.
func (c Category) IsKnown() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// IsWildcard reports whether c matches every article. Only AllCategories
// does; Uncategorized matches the rows with a blank label.
func (c Category) IsWildcard() bool {
	return c == AllCategories
}

// ParseCategory maps a raw model answer onto the closed set. Surrounding
// whitespace is ignored; anything outside the set becomes Uncategorized.
func ParseCategory(raw string) Category {
	c := Category(strings.TrimSpace(raw))
	if c.IsKnown() {
		return c
	}
	return Uncategorized
}

// FilterByCategory returns the articles whose category equals label exactly.
// The wildcard label returns the input unchanged.
func FilterByCategory(articles []Article, label Category) []Article {
	if label == AllCategories {
		return articles
	}

	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == label {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
