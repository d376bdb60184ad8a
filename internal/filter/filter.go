// Package filter narrows the place catalog down to the candidates shown on the
// place-selection step. Everything here is pure: no network, no storage.
package filter

import (
	"strings"

	"github.com/pkordes/trip-builder/internal/domain"
)

// AllTypes is the facet sentinel that disables type filtering.
const AllTypes = "الكل"

// Places applies the constraint, then the optional type facet, preserving
// catalog order. When search is non-empty the constrained result is discarded
// and replaced by a substring match over the whole catalog (see Search).
// The result is never nil.
func Places(catalog []domain.Place, c domain.Constraint, typeFacet, search string) []domain.Place {
	if search != "" {
		return Search(catalog, search)
	}

	out := make([]domain.Place, 0, len(catalog))
	for _, p := range catalog {
		if p.City != c.Destination {
			continue
		}
		if !p.HasCategory(c.Category) {
			continue
		}
		if typeFacet != "" && typeFacet != AllTypes && p.Type != typeFacet {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search returns every catalog place whose name, location or type contains
// text. Matching is case and diacritic sensitive.
func Search(catalog []domain.Place, text string) []domain.Place {
	out := make([]domain.Place, 0)
	for _, p := range catalog {
		if strings.Contains(p.Name, text) ||
			strings.Contains(p.Location, text) ||
			strings.Contains(p.Type, text) {
			out = append(out, p)
		}
	}
	return out
}

// AvailableTypes lists the facet values for places: AllTypes first, then each
// distinct non-empty type in first-seen order.
func AvailableTypes(places []domain.Place) []string {
	types := []string{AllTypes}
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		if p.Type == "" {
			continue
		}
		if _, ok := seen[p.Type]; ok {
			continue
		}
		seen[p.Type] = struct{}{}
		types = append(types, p.Type)
	}
	return types
}

// Lookup returns the catalog place with the given ID.
func Lookup(catalog []domain.Place, id string) (domain.Place, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Place{}, false
}
