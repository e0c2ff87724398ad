package types

import "strings"

// Experience is a catalog entry describing an addable activity. Catalog
// entries are read-only; the exception is user-added location entries
// (IsLocation), which are retained client-side across catalog refreshes.
type Experience struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Duration   string       `json:"duration"`
	Price      float64      `json:"price"`
	Category   string       `json:"category,omitempty"`
	IsLocation bool         `json:"isLocation,omitempty"`
	Location   *LocationRef `json:"locationRef,omitempty"`
	Media      Media        `json:"media"`
}

// AddressKey returns the deduplication key for a location-backed
// experience: its normalized address, or "" when it has none.
func (e Experience) AddressKey() string {
	if e.Location == nil {
		return ""
	}
	return NormalizeAddress(e.Location.Address)
}

// NormalizeAddress lowercases an address and collapses runs of
// whitespace so trivially different spellings compare equal.
func NormalizeAddress(addr string) string {
	return strings.Join(strings.Fields(strings.ToLower(addr)), " ")
}
