// Package export implements the catalog-row export pipeline: variant
// expansion into flat rows and serialization into a Meesho-ready workbook.
package export

import (
	"strings"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/model"
)

// BuildSKU derives the marketplace seller SKU for one variant:
// the upper-cased concatenation productID-size-color. Hyphens inside the
// size or color are not escaped, so two variants that only differ by where
// a hyphen falls can collide; Meesho's seller-SKU convention accepts this.
func BuildSKU(productID string, v model.Variant) string {
	return strings.ToUpper(productID + "-" + v.Size + "-" + v.Color)
}

// VariationLabel formats the variant for the Variation column as size|color.
// The pipe is a literal separator and is not escaped.
func VariationLabel(v model.Variant) string {
	return v.Size + "|" + v.Color
}

// BuildRows expands one product across its variants into export rows, one
// per variant in input order. Every row carries the product's scalar fields
// and the same image link set. An empty variant list is a validation
// failure, never a silent zero-row success.
func BuildRows(p model.Product, variants []model.Variant, links model.ImageLinkSet) ([]model.ExportRow, error) {
	if len(variants) == 0 {
		return nil, apperr.NoVariantsErr
	}

	rows := make([]model.ExportRow, 0, len(variants))
	for _, v := range variants {
		rows = append(rows, model.ExportRow{
			Name:         p.Name,
			Variation:    VariationLabel(v),
			SellingPrice: p.SellingPrice,
			MRP:          p.MRP,
			GSTPercent:   p.GSTPercent,
			ImageLinks:   links,
			SKU:          BuildSKU(p.ProductID, v),
			Brand:        p.Brand,
			ProductID:    p.ProductID,
			Description:  p.Description,
			HSNCode:      p.HSNCode,
			WeightGrams:  p.WeightGrams,
			Keywords:     p.Keywords,
		})
	}

	return rows, nil
}
