package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-builder/internal/domain"
)

func fullConstraint() domain.Constraint {
	return domain.Constraint{
		People:      2,
		Amount:      "5000",
		Destination: "أسوان",
		Category:    "تاريخية",
	}
}

// TestConstraint_Complete_AllCombinations checks every presence/absence
// combination of the four required fields: complete only when all are set.
func TestConstraint_Complete_AllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		t.Run(fmt.Sprintf("mask=%04b", mask), func(t *testing.T) {
			c := domain.Constraint{}
			want := []string{}
			if mask&1 != 0 {
				c.People = 3
			} else {
				want = append(want, "people")
			}
			if mask&2 != 0 {
				c.Amount = "1200"
			} else {
				want = append(want, "amount")
			}
			if mask&4 != 0 {
				c.Destination = "القاهرة"
			} else {
				want = append(want, "destination")
			}
			if mask&8 != 0 {
				c.Category = "ثقافية"
			} else {
				want = append(want, "category")
			}

			assert.Equal(t, mask == 15, c.Complete())
			assert.ElementsMatch(t, want, c.Missing())
		})
	}
}

func TestConstraint_Missing_WhitespaceAmount(t *testing.T) {
	c := fullConstraint()
	c.Amount = "   "

	assert.Equal(t, []string{"amount"}, c.Missing())
}

func TestConstraint_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Constraint)
		wantErr bool
	}{
		{"full constraint", func(*domain.Constraint) {}, false},
		{"empty constraint", func(c *domain.Constraint) { *c = domain.Constraint{} }, false},
		{"people above max", func(c *domain.Constraint) { c.People = 11 }, true},
		{"negative people", func(c *domain.Constraint) { c.People = -1 }, true},
		{"non numeric amount", func(c *domain.Constraint) { c.Amount = "a lot" }, true},
		{"negative amount", func(c *domain.Constraint) { c.Amount = "-5" }, true},
		{"decimal amount", func(c *domain.Constraint) { c.Amount = "99.5" }, false},
		{"unknown destination", func(c *domain.Constraint) { c.Destination = "Paris" }, true},
		{"unknown category", func(c *domain.Constraint) { c.Category = "shopping" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fullConstraint()
			tt.mutate(&c)

			err := c.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConstraint_AdjustPeople(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"empty plus one", 0, 1, 1},
		{"empty minus one stays empty", 0, -1, 0},
		{"increment", 4, 1, 5},
		{"decrement", 4, -1, 3},
		{"cannot go below one", 1, -1, 1},
		{"cannot exceed ten", 10, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.Constraint{People: tt.start}

			got := c.AdjustPeople(tt.delta)

			assert.Equal(t, tt.want, got.People)
		})
	}
}
