package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"darpanwears/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "prod_1", Name: "Denim Jacket", Category: "Jackets"},
		{ID: "prod_2", Name: "Classic White Tee", Category: "T-Shirts"},
		{ID: "prod_3", Name: "Black Skinny Jeans", Category: "Jeans"},
		{ID: "prod_4", Name: "Floral Summer Dress", Category: "Dresses"},
	}
}

func TestFilterCatalogIdentity(t *testing.T) {
	products := testProducts()
	got := FilterCatalog(products, "", AllCategories)
	assert.Equal(t, products, got)
}

func TestFilterCatalogSearchIsCaseInsensitive(t *testing.T) {
	got := FilterCatalog(testProducts(), "jean", AllCategories)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Black Skinny Jeans", got[0].Name)
	}

	got = FilterCatalog(testProducts(), "JEAN", AllCategories)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "prod_3", got[0].ID)
	}
}

func TestFilterCatalogCategoryIsExact(t *testing.T) {
	got := FilterCatalog(testProducts(), "", "Jackets")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "prod_1", got[0].ID)
	}

	// Case-sensitive on purpose: "jackets" is a different category.
	assert.Empty(t, FilterCatalog(testProducts(), "", "jackets"))
}

func TestFilterCatalogCombinesCategoryAndSearch(t *testing.T) {
	products := append(testProducts(), models.Product{
		ID: "prod_5", Name: "Leather Biker Jacket", Category: "Jackets",
	})

	got := FilterCatalog(products, "leather", "Jackets")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "prod_5", got[0].ID)
	}
}

func TestFilterCatalogPreservesOrder(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "Tee One"},
		{ID: "b", Name: "Jacket"},
		{ID: "c", Name: "Tee Two"},
	}
	got := FilterCatalog(products, "tee", AllCategories)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[1].ID)
	}
}

func TestFilterCatalogWhitespaceTermIsLiteral(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "DenimJacket"},
		{ID: "b", Name: "Denim Jacket"},
	}
	got := FilterCatalog(products, " ", AllCategories)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "b", got[0].ID)
	}
}

func TestFilterCatalogEmptyInput(t *testing.T) {
	assert.Empty(t, FilterCatalog(nil, "anything", AllCategories))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹2999", FormatPrice(2999))
	assert.Equal(t, "₹0", FormatPrice(0))
}

func TestEffectiveCOD(t *testing.T) {
	disabled := false
	enabled := true

	// Absent product flag defaults to available.
	assert.True(t, EffectiveCOD(true, models.Product{}))
	assert.False(t, EffectiveCOD(false, models.Product{}))
	assert.False(t, EffectiveCOD(true, models.Product{IsCashOnDeliveryAvailable: &disabled}))
	assert.True(t, EffectiveCOD(true, models.Product{IsCashOnDeliveryAvailable: &enabled}))
	assert.False(t, EffectiveCOD(false, models.Product{IsCashOnDeliveryAvailable: &enabled}))
}
