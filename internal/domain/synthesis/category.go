// Package synthesis renders post drafts for ranked topics from
// topic-conditioned template pools.
package synthesis

import "strings"

// Category is the closed set of template branches a topic can select.
// Classification happens once per topic and is shared by title and
// body rendering.
type Category int

// Template branch categories.
const (
	CategoryGeneric Category = iota
	CategoryHorror
	CategoryRomance
	CategoryAwards
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryHorror:
		return "horror"
	case CategoryRomance:
		return "romance"
	case CategoryAwards:
		return "awards"
	default:
		return "generic"
	}
}

// Classify maps a topic name to its template category by keyword match.
// Topics matching no keyword fall back to the generic branch.
func Classify(topic string) Category {
	t := strings.ToLower(topic)
	switch {
	case strings.Contains(t, "horror"):
		return CategoryHorror
	case strings.Contains(t, "romance") || strings.Contains(t, "love"):
		return CategoryRomance
	case strings.Contains(t, "oscar") || strings.Contains(t, "award"):
		return CategoryAwards
	default:
		return CategoryGeneric
	}
}
