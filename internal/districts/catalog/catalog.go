// Package catalog holds the static district reference dataset and its
// query helpers. The dataset is read-only shared state; no locking needed.
package catalog

import (
	"sort"
	"strings"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/domain"
)

// Catalog answers lookup, search and grouping queries over the static
// district list.
type Catalog struct {
	districts []domain.District
	byID      map[string]domain.District
}

// New builds a catalog over the built-in dataset.
func New() *Catalog {
	return NewWithData(districts)
}

// NewWithData builds a catalog over the given dataset. Useful in tests.
func NewWithData(data []domain.District) *Catalog {
	byID := make(map[string]domain.District, len(data))
	for _, d := range data {
		byID[d.ID] = d
	}
	return &Catalog{districts: data, byID: byID}
}

// All returns every district in declaration order.
func (c *Catalog) All() []domain.District {
	out := make([]domain.District, len(c.districts))
	copy(out, c.districts)
	return out
}

// FindByCode returns the district with the given code, or ErrDistrictNotFound.
func (c *Catalog) FindByCode(code string) (domain.District, error) {
	d, ok := c.byID[code]
	if !ok {
		return domain.District{}, domain.ErrDistrictNotFound
	}
	return d, nil
}

// ListByState groups districts by state. States come back sorted ascending
// and districts within a state are sorted by primary name.
func (c *Catalog) ListByState() ([]string, map[string][]domain.District) {
	grouped := make(map[string][]domain.District)
	for _, d := range c.districts {
		grouped[d.State] = append(grouped[d.State], d)
	}

	states := make([]string, 0, len(grouped))
	for state := range grouped {
		states = append(states, state)
		sort.Slice(grouped[state], func(i, j int) bool {
			return grouped[state][i].Name < grouped[state][j].Name
		})
	}
	sort.Strings(states)

	return states, grouped
}

// Search returns districts whose name or state contains the query in either
// language, case-insensitively. An empty query returns the full dataset in
// declaration order.
func (c *Catalog) Search(query string) []domain.District {
	if query == "" {
		return c.All()
	}

	term := strings.ToLower(query)
	var out []domain.District
	for _, d := range c.districts {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.State), term) ||
			strings.Contains(strings.ToLower(d.NameHi), term) ||
			strings.Contains(strings.ToLower(d.StateHi), term) {
			out = append(out, d)
		}
	}
	return out
}
