package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luciantraders/meesho-lister/internal/model"
)

func TestNormalizeVariants(t *testing.T) {
	t.Run("Should keep valid variants in insertion order", func(t *testing.T) {
		variants := []model.Variant{
			{Size: "M", Color: "Red"},
			{Size: "L", Color: "Blue"},
			{Size: "XL", Color: "Green"},
		}

		got := model.NormalizeVariants(variants)

		assert.Equal(t, variants, got)
	})

	t.Run("Should drop blank entries and trim the rest", func(t *testing.T) {
		got := model.NormalizeVariants([]model.Variant{
			{Size: " M ", Color: "Red"},
			{Size: "", Color: "Blue"},
			{Size: "L", Color: "   "},
		})

		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, got)
	})

	t.Run("Should yield exactly the default variant for an empty list", func(t *testing.T) {
		got := model.NormalizeVariants(nil)

		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, got)
	})

	t.Run("Should yield exactly the default variant for blank-only lists", func(t *testing.T) {
		got := model.NormalizeVariants([]model.Variant{
			{Size: "", Color: ""},
			{Size: "  ", Color: "Red"},
		})

		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, got)
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		once := model.NormalizeVariants(nil)
		twice := model.NormalizeVariants(once)

		assert.Equal(t, once, twice)
	})

	t.Run("Should not mutate the input slice", func(t *testing.T) {
		in := []model.Variant{
			{Size: " M ", Color: "Red"},
			{Size: "L", Color: "Blue"},
		}

		model.NormalizeVariants(in)

		assert.Equal(t, " M ", in[0].Size)
	})
}
