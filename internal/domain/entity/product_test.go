package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Product {
	eighty := 80.0
	return []Product{
		{ID: "prod_0", Name: "Tea Powder Sachet", Price: 5, Category: "Grocery", Enabled: true},
		{ID: "prod_1", Name: "Coffee Sachet", Price: 5, Category: "Grocery", Enabled: true},
		{ID: "prod_2", Name: "Pen", Price: 5, Category: "Stationery", Enabled: true},
		{ID: "prod_3", Name: "Pencil", Price: 2, Category: "Stationery", Enabled: false},
		{ID: "prod_4", Name: "Gift Box", Price: 100, DiscountPrice: &eighty, Category: "Gifts", Enabled: true},
	}
}

func TestProduct_EffectivePrice(t *testing.T) {
	eighty := 80.0

	assert.InDelta(t, 100.0, Product{Price: 100}.EffectivePrice(), 1e-9)
	assert.InDelta(t, 80.0, Product{Price: 100, DiscountPrice: &eighty}.EffectivePrice(), 1e-9)
}

func TestFilterProducts_EmptySearchAndAllCategoryReturnsEverything(t *testing.T) {
	products := sampleCatalog()

	assert.Equal(t, products, FilterProducts(products, "", CategoryAll))
}

func TestFilterProducts_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterProducts(sampleCatalog(), "pEn", CategoryAll)

	require.Len(t, got, 2)
	assert.Equal(t, "Pen", got[0].Name)
	assert.Equal(t, "Pencil", got[1].Name)
}

func TestFilterProducts_CategoryIsExactMatch(t *testing.T) {
	got := FilterProducts(sampleCatalog(), "", "Grocery")

	require.Len(t, got, 2)
	assert.Equal(t, "prod_0", got[0].ID)
	assert.Equal(t, "prod_1", got[1].ID)
}

func TestFilterProducts_PredicatesCombineWithAnd(t *testing.T) {
	got := FilterProducts(sampleCatalog(), "pen", "Grocery")

	assert.Empty(t, got)
}

func TestEnabledProducts_HidesDisabledEntries(t *testing.T) {
	got := EnabledProducts(sampleCatalog())

	require.Len(t, got, 4)
	for _, p := range got {
		assert.True(t, p.Enabled)
	}
}

func TestCategories_DistinctFirstSeenOrderWithAllFirst(t *testing.T) {
	got := Categories(sampleCatalog())

	assert.Equal(t, []string{CategoryAll, "Grocery", "Stationery", "Gifts"}, got)
}
