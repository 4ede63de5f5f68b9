// Package catalog filters the full assignment collection for listing.
// It is pure and stateless: callers own any input coalescing (the web client
// debounces search keystrokes for 500ms before asking), the engine just
// answers whatever it is handed.
package catalog

import (
	"strings"

	"github.com/lshigami/Marmoset/internal/model"
)

type Filter struct {
	Difficulty string // exact match against the difficulty enum; "" means all
	Search     string // case-insensitive substring on title; "" means all
}

// Query returns the assignments matching every non-empty criterion in f,
// preserving the order of all. An empty filter returns the input unchanged.
func Query(all []model.Assignment, f Filter) []model.Assignment {
	if f.Difficulty == "" && f.Search == "" {
		return all
	}

	search := strings.ToLower(f.Search)
	out := make([]model.Assignment, 0, len(all))
	for _, a := range all {
		if f.Difficulty != "" && a.Difficulty != f.Difficulty {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(a.Title), search) {
			continue
		}
		out = append(out, a)
	}
	return out
}
