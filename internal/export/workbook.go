package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/luciantraders/meesho-lister/internal/model"
)

// SheetName is the single sheet the workbook carries.
const SheetName = "Sheet1"

// Headers is the fixed Meesho bulk-upload column order. Columns 1-10 cover
// the listing fields and the five image links, 11-17 the seller metadata.
var Headers = []string{
	"Product Name", "Variation", "Meesho Price", "MRP", "GST %",
	"Image Link 1", "Image Link 2", "Image Link 3", "Image Link 4", "Image Link 5",
	"Seller SKU", "Brand Name", "Product ID", "Description", "HSN Code", "Weight (g)", "Keywords",
}

// Header band fills, kept byte-compatible with the legacy generator.
const (
	linkBandColor = "FF0000"
	metaBandColor = "00FF00"
	linkBandWidth = 10
)

// Filename returns the suggested download name for a product's workbook.
func Filename(productID string) string {
	return fmt.Sprintf("meesho_%s_ready.xlsx", productID)
}

// WriteWorkbook serializes the rows into a complete single-sheet xlsx
// buffer: the fixed banded header on row 1, one data row per export row
// from row 2, columns in template order. Any serialization error is
// terminal; no partial buffer is returned.
func WriteWorkbook(rows []model.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	linkStyle, err := newBandStyle(f, linkBandColor)
	if err != nil {
		return nil, err
	}
	metaStyle, err := newBandStyle(f, metaBandColor)
	if err != nil {
		return nil, err
	}

	for i, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}

		style := linkStyle
		if i >= linkBandWidth {
			style = metaStyle
		}
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return nil, fmt.Errorf("style header cell %s: %w", cell, err)
		}
	}

	for r, row := range rows {
		for c, value := range rowCells(row) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("data cell name: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set data cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func newBandStyle(f *excelize.File, color string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return 0, fmt.Errorf("new band style: %w", err)
	}
	return style, nil
}

// rowCells flattens one export row into template column order. Numeric
// fields stay numeric so they land as number cells.
func rowCells(r model.ExportRow) []any {
	return []any{
		r.Name, r.Variation, r.SellingPrice, r.MRP, r.GSTPercent,
		r.ImageLinks[0], r.ImageLinks[1], r.ImageLinks[2], r.ImageLinks[3], r.ImageLinks[4],
		r.SKU, r.Brand, r.ProductID, r.Description, r.HSNCode, r.WeightGrams, r.Keywords,
	}
}
