package directory

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultOptionsPerPage caps how many option rows a form pulls per entity
// kind. Matches the back office's option endpoints.
const DefaultOptionsPerPage = 1000

// EntityFilter selects entities for an option list. Search matches name or
// SKU server-side; LowStock is honored for products only.
type EntityFilter struct {
	Search   string `json:"search,omitempty"`
	LowStock bool   `json:"low_stock,omitempty"`
	PerPage  int    `json:"per_page,omitempty"`
}

// Validate checks the filter before it is sent to the directory.
func (f EntityFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Search, validation.Length(0, 120)),
		validation.Field(&f.PerPage, validation.Min(0), validation.Max(DefaultOptionsPerPage)),
	)
}

// Limit returns the effective page cap.
func (f EntityFilter) Limit() int {
	if f.PerPage <= 0 {
		return DefaultOptionsPerPage
	}
	return f.PerPage
}

// OrderFilter selects order rows for a list screen. When All is set the date
// is ignored and the full history is returned.
type OrderFilter struct {
	Date string `json:"date,omitempty"`
	All  bool   `json:"all,omitempty"`
}

// Validate requires a well-formed date unless the show-all flag is set.
func (f OrderFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Date,
			validation.Required.When(!f.All),
			validation.Date("2006-01-02"),
		),
	)
}
