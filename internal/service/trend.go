package service

import (
	"context"
	"strings"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/model"
)

// TrendService serves the competitor research catalog. The data is a static
// snapshot; a live source could be dropped in behind the same interface.
type TrendService interface {
	Platforms(ctx context.Context) []string
	ListTrending(ctx context.Context, platforms, categories []string) ([]model.TrendProduct, error)
}

type trendService struct {
	catalog map[string][]model.TrendProduct
}

func NewTrendService() TrendService {
	return &trendService{catalog: trendCatalog}
}

func (s *trendService) Platforms(_ context.Context) []string {
	return []string{
		"Amazon Fashion",
		"Myntra",
		"Flipkart Fashion",
		"Nykaa Fashion",
		"Meesho Trends",
	}
}

// ListTrending returns every catalog entry whose platform is selected and
// whose category contains at least one of the selected category tokens.
// Both filters must be non-empty; the result order follows the platform
// selection order, then catalog order.
func (s *trendService) ListTrending(_ context.Context, platforms, categories []string) ([]model.TrendProduct, error) {
	if len(platforms) == 0 || len(categories) == 0 {
		return nil, apperr.TrendFilterErr
	}

	filtered := make([]model.TrendProduct, 0)
	for _, platform := range platforms {
		for _, product := range s.catalog[platform] {
			if matchesAnyCategory(product.Category, categories) {
				product.Platform = platform
				filtered = append(filtered, product)
			}
		}
	}

	return filtered, nil
}

func matchesAnyCategory(category string, tokens []string) bool {
	for _, token := range tokens {
		if token != "" && strings.Contains(category, token) {
			return true
		}
	}
	return false
}

// trendCatalog is the static research snapshot, keyed by platform name.
var trendCatalog = map[string][]model.TrendProduct{
	"Amazon Fashion": {
		{
			Name:      "Women's Floral Printed Kurti",
			Price:     "₹799",
			Rating:    "4.3",
			Link:      "https://www.amazon.in/dp/B0BXYZ1234",
			SalesRank: "Best Seller",
			Category:  "Women's Kurtis",
		},
		{
			Name:      "Cotton Anarkali Dress",
			Price:     "₹1,299",
			Rating:    "4.5",
			Link:      "https://www.amazon.in/dp/B0BABC5678",
			SalesRank: "#1 in Women's Dresses",
			Category:  "Women's Dresses",
		},
		{
			Name:      "Men's Slim Fit Cotton T-Shirt",
			Price:     "₹499",
			Rating:    "4.2",
			Link:      "https://www.amazon.in/dp/B0BDEF9012",
			SalesRank: "#3 in Men's T-Shirts",
			Category:  "Men's T-Shirts",
		},
	},
	"Myntra": {
		{
			Name:      "Embroidered Straight Kurti",
			Price:     "₹899",
			Rating:    "4.4",
			Link:      "https://www.myntra.com/kurti/brand/product123",
			SalesRank: "Trending",
			Category:  "Women's Kurtis",
		},
		{
			Name:      "Printed A-Line Ethnic Dress",
			Price:     "₹1,099",
			Rating:    "4.1",
			Link:      "https://www.myntra.com/dress/brand/product456",
			SalesRank: "Trending",
			Category:  "Ethnic Wear",
		},
	},
	"Flipkart Fashion": {
		{
			Name:      "Rayon Flared Kurti",
			Price:     "₹649",
			Rating:    "4.0",
			Link:      "https://www.flipkart.com/kurti/p/itm789",
			SalesRank: "Bestseller",
			Category:  "Women's Kurtis",
		},
		{
			Name:      "Men's Casual Checked Shirt",
			Price:     "₹749",
			Rating:    "4.2",
			Link:      "https://www.flipkart.com/shirt/p/itm012",
			SalesRank: "Popular",
			Category:  "Men's Shirts",
		},
	},
	"Nykaa Fashion": {
		{
			Name:      "Georgette Wrap Dress",
			Price:     "₹1,499",
			Rating:    "4.3",
			Link:      "https://www.nykaafashion.com/dress/p/345",
			SalesRank: "Editor's Pick",
			Category:  "Western Wear",
		},
	},
	"Meesho Trends": {
		{
			Name:      "Chikankari Cotton Kurti",
			Price:     "₹399",
			Rating:    "4.0",
			Link:      "https://www.meesho.com/kurti/p/678",
			SalesRank: "Hot Selling",
			Category:  "Women's Kurtis",
		},
		{
			Name:      "Sequined Party Dress",
			Price:     "₹899",
			Rating:    "3.9",
			Link:      "https://www.meesho.com/dress/p/901",
			SalesRank: "Hot Selling",
			Category:  "Women's Dresses",
		},
	},
}
