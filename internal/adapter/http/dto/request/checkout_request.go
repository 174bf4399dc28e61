package request

import (
	"errors"
	"math"
	"strings"
)

var ErrInvalidUnitPrice = errors.New("invalid unit price")

// CreatePreferenceRequest is the checkout payload. unitPrice is expressed in
// currency units (reais), matching the frontend contract; it is converted to
// cents before reaching the use case.
type CreatePreferenceRequest struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (r CreatePreferenceRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

// ResolveUnitPriceCents converts the currency-unit price to cents, rejecting
// negatives and values that would overflow.
func (r CreatePreferenceRequest) ResolveUnitPriceCents() (int64, error) {
	if r.UnitPrice < 0 {
		return 0, ErrInvalidUnitPrice
	}
	cents := math.Round(r.UnitPrice * 100)
	if cents > math.MaxInt64 {
		return 0, ErrInvalidUnitPrice
	}
	return int64(cents), nil
}
