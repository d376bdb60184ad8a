// Package domain contains the core data types for the trip builder.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (filter, client, repo, service, handler).
package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// People bounds enforced by the stepper on the Create step.
const (
	MinPeople = 1
	MaxPeople = 10
)

// Destinations is the fixed set of cities a trip can be built for.
var Destinations = []string{
	"القاهرة",
	"الإسكندرية",
	"جنوب سيناء",
	"مطروح",
	"أسوان",
}

// Categories is the fixed set of program categories.
var Categories = []string{
	"ثقافية",
	"تاريخية",
	"ترفيهية",
	"عائلية",
	"دينية",
	"رومانسية",
	"مغامرات",
	"تجربية",
	"بحرية",
}

// Constraint is the trip "form" entered on the Create step.
// Zero values mean the field has not been filled in yet.
// It is persisted as JSON under the programData draft key.
type Constraint struct {
	People      int    `json:"people,omitempty"`
	Amount      string `json:"amount,omitempty"` // budget, numeric string
	Destination string `json:"destination,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Missing returns the names of the required fields that are still empty,
// in form order. An empty result means the constraint is complete.
func (c Constraint) Missing() []string {
	var missing []string
	if c.People == 0 {
		missing = append(missing, "people")
	}
	if strings.TrimSpace(c.Amount) == "" {
		missing = append(missing, "amount")
	}
	if c.Destination == "" {
		missing = append(missing, "destination")
	}
	if c.Category == "" {
		missing = append(missing, "category")
	}
	return missing
}

// Complete reports whether all four required fields are present.
func (c Constraint) Complete() bool {
	return len(c.Missing()) == 0
}

// IsEmpty reports whether no field has been filled in.
func (c Constraint) IsEmpty() bool {
	return c == Constraint{}
}

// Validate checks the fields that are present. Empty fields are allowed here;
// use Missing/Complete to gate advancing or submitting.
func (c Constraint) Validate() error {
	if c.People != 0 && (c.People < MinPeople || c.People > MaxPeople) {
		return fmt.Errorf("%w: people must be between %d and %d", ErrValidation, MinPeople, MaxPeople)
	}
	if a := strings.TrimSpace(c.Amount); a != "" {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("%w: amount must be a non-negative number", ErrValidation)
		}
	}
	if c.Destination != "" && !slices.Contains(Destinations, c.Destination) {
		return fmt.Errorf("%w: unknown destination %q", ErrValidation, c.Destination)
	}
	if c.Category != "" && !slices.Contains(Categories, c.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, c.Category)
	}
	return nil
}

// AdjustPeople applies a stepper increment. An empty count is treated as 0.
// The change is applied only when the result stays within MinPeople..MaxPeople;
// otherwise the constraint is returned unchanged.
func (c Constraint) AdjustPeople(delta int) Constraint {
	n := c.People + delta
	if n >= MinPeople && n <= MaxPeople {
		c.People = n
	}
	return c
}
