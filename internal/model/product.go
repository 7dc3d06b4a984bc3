package model

// Product holds the catalog attributes shared by every variant row of one
// export. It is immutable for the duration of an export operation; the form
// boundary validates field ranges before a Product enters the core.
type Product struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	SellingPrice float64 `json:"selling_price"`
	MRP          float64 `json:"mrp"`
	GSTPercent   float64 `json:"gst_percent"`
	Description  string  `json:"description"`
	Keywords     string  `json:"keywords"`
	HSNCode      string  `json:"hsn_code"`
	WeightGrams  float64 `json:"weight_grams"`
}

// MaxImages is the maximum number of images attached to one product export.
const MaxImages = 5

// ImageLinkSet is a fixed five-slot sequence of public image URLs, populated
// left to right from however many images were supplied. Empty slots stay "".
// The same set is shared by every variant row of one export.
type ImageLinkSet [MaxImages]string

// ExportRow is one flattened record written as a spreadsheet data row.
// Field order matches the Meesho bulk-upload template column order.
type ExportRow struct {
	Name         string
	Variation    string
	SellingPrice float64
	MRP          float64
	GSTPercent   float64
	ImageLinks   ImageLinkSet
	SKU          string
	Brand        string
	ProductID    string
	Description  string
	HSNCode      string
	WeightGrams  float64
	Keywords     string
}
