package model

// TrendProduct describes one competitor listing in the trend catalog.
// Price and rating stay as display strings; the catalog is research data,
// not something we compute on.
type TrendProduct struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Rating    string `json:"rating"`
	Link      string `json:"link"`
	SalesRank string `json:"sales_rank"`
	Category  string `json:"category"`
	Platform  string `json:"platform"`
}
