package domain

import "slices"

// Place is a bookable place as served by the remote catalog.
// The client holds an immutable copy for the duration of a browsing session.
type Place struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Location   string   `json:"location"`
	Type       string   `json:"type"`
	Categories []string `json:"cate"`
	Rating     float64  `json:"rate"`
	Price      float64  `json:"price"`
	Image      string   `json:"image"`
}

// HasCategory reports whether category is one of the place's tags.
func (p Place) HasCategory(category string) bool {
	return slices.Contains(p.Categories, category)
}

// Saved returns the abbreviated record stored in a SelectionSet.
func (p Place) Saved() SavedPlace {
	return SavedPlace{
		ID:    p.ID,
		Image: p.Image,
		Name:  p.Name,
		Price: p.Price,
		City:  p.City,
	}
}

// SavedPlace is the abbreviated Place kept in the user's selection.
type SavedPlace struct {
	ID    string  `json:"_id"`
	Image string  `json:"image"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	City  string  `json:"city"`
}
