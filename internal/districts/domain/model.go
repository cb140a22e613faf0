package domain

import "errors"

var ErrDistrictNotFound = errors.New("district not found")

// District is immutable reference data describing one administrative district.
// NameHi and StateHi carry the Hindi rendering and may be empty.
type District struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	State   string `json:"state"`
	NameHi  string `json:"name_hi,omitempty"`
	StateHi string `json:"state_hi,omitempty"`
}
