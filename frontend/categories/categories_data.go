package categories

import "gasdesk/infrastructure/erp"

// BuildTiles derives one tile per category type. A type with no categories
// still gets a tile so new types can be filtered to immediately.
func BuildTiles(categories []erp.Category, selectedType string) []TypeTile {
	counts := make(map[string]int, len(erp.CategoryTypes))
	for _, c := range categories {
		counts[c.Type]++
	}
	tiles := make([]TypeTile, 0, len(erp.CategoryTypes))
	for _, t := range erp.CategoryTypes {
		tiles = append(tiles, TypeTile{Type: t, Count: counts[t], Selected: t == selectedType})
	}
	return tiles
}

// FilterByType keeps categories of the given type, or all when empty.
func FilterByType(categories []erp.Category, categoryType string) []erp.Category {
	if categoryType == "" {
		return categories
	}
	out := make([]erp.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out
}

// IsKnownType reports whether t is one of the fixed category types.
func IsKnownType(t string) bool {
	for _, known := range erp.CategoryTypes {
		if t == known {
			return true
		}
	}
	return false
}
