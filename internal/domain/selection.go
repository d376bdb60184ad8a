package domain

// SelectionSet is the ordered list of places the user has picked.
// Membership is keyed by ID: a place appears at most once.
type SelectionSet []SavedPlace

// Contains reports whether a place with the given ID is selected.
func (s SelectionSet) Contains(id string) bool {
	for _, p := range s {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Toggle returns a new set with place removed if it was selected, or appended
// at the end if it was not. The receiver is never modified.
func (s SelectionSet) Toggle(place Place) SelectionSet {
	out := make(SelectionSet, 0, len(s)+1)
	removed := false
	for _, p := range s {
		if p.ID == place.ID {
			removed = true
			continue
		}
		out = append(out, p)
	}
	if !removed {
		out = append(out, place.Saved())
	}
	return out
}

// Names returns the selected place names in selection order.
func (s SelectionSet) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}

// Images returns the selected image URLs in selection order.
func (s SelectionSet) Images() []string {
	images := make([]string, len(s))
	for i, p := range s {
		images[i] = p.Image
	}
	return images
}

// Total returns the sum of the selected places' prices.
func (s SelectionSet) Total() float64 {
	var sum float64
	for _, p := range s {
		sum += p.Price
	}
	return sum
}
