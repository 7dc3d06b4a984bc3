package model

import "strings"

// Default variant seeded whenever normalization empties a variant list.
const (
	DefaultVariantSize  = "M"
	DefaultVariantColor = "Red"
)

// Variant is one size/color combination of a product, exported as its own
// catalog row. Both fields are non-empty after trimming.
type Variant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// IsBlank reports whether either field is empty after trimming.
func (v Variant) IsBlank() bool {
	return strings.TrimSpace(v.Size) == "" || strings.TrimSpace(v.Color) == ""
}

// DefaultVariant returns the variant seeded into an emptied list.
func DefaultVariant() Variant {
	return Variant{Size: DefaultVariantSize, Color: DefaultVariantColor}
}

// NormalizeVariants drops entries with a blank size or color, preserving the
// order of the rest. An input that normalizes to nothing yields exactly one
// default variant, so the result is never empty. The input slice is not
// mutated.
func NormalizeVariants(variants []Variant) []Variant {
	normalized := make([]Variant, 0, len(variants))
	for _, v := range variants {
		if v.IsBlank() {
			continue
		}
		normalized = append(normalized, Variant{
			Size:  strings.TrimSpace(v.Size),
			Color: strings.TrimSpace(v.Color),
		})
	}

	if len(normalized) == 0 {
		return []Variant{DefaultVariant()}
	}

	return normalized
}
