package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsShowCartIntent(t *testing.T) {
	assert.True(t, isShowCartIntent("Show cart please"))
	assert.True(t, isShowCartIntent("let me see my cart"))
	assert.True(t, isShowCartIntent("what are the items in cart?"))
	assert.False(t, isShowCartIntent("show me jackets"))
}

func TestIsGiftIntent(t *testing.T) {
	assert.True(t, isGiftIntent("I need a gift"))
	assert.True(t, isGiftIntent("a present for my sister"))
	assert.True(t, isGiftIntent("something to buy for dad"))
	assert.False(t, isGiftIntent("show me jackets"))
}

func TestIsRelaxPriceIntent(t *testing.T) {
	// Whole-message match only.
	assert.True(t, isRelaxPriceIntent("Increase budget"))
	assert.True(t, isRelaxPriceIntent("remove price limit"))
	assert.True(t, isRelaxPriceIntent("show similar items"))
	assert.False(t, isRelaxPriceIntent("please increase budget"))
	assert.False(t, isRelaxPriceIntent("increase the budget"))
}

func TestIsClosestStoreWithProductIntent(t *testing.T) {
	assert.True(t, isClosestStoreWithProductIntent("closest store with winter jackets"))
	assert.True(t, isClosestStoreWithProductIntent("Nearest shop with hoodies"))
	assert.False(t, isClosestStoreWithProductIntent("closest store"))
}

func TestIsClosestStoreIntent(t *testing.T) {
	assert.True(t, isClosestStoreIntent("where is the closest store?"))
	assert.True(t, isClosestStoreIntent("nearest distribution center"))
	assert.True(t, isClosestStoreIntent("closest store with winter jackets"))
	assert.False(t, isClosestStoreIntent("show me jackets"))
}

func TestIsCheapestStoreIntent(t *testing.T) {
	assert.True(t, isCheapestStoreIntent("cheapest store nearby"))
	assert.True(t, isCheapestStoreIntent("which shop is cheapest"))
	// "cheapest" alone is not enough.
	assert.False(t, isCheapestStoreIntent("cheapest jacket"))
	assert.False(t, isCheapestStoreIntent("closest store"))
}

func TestHasCompareMarker(t *testing.T) {
	assert.True(t, hasCompareMarker("compare these jackets"))
	assert.True(t, hasCompareMarker("What's the difference between these?"))
	assert.False(t, hasCompareMarker("show me jackets"))
}

func TestHasSearchFilters(t *testing.T) {
	assert.True(t, hasSearchFilters("jackets under $50"))
	assert.True(t, hasSearchFilters("medium hoodie"))
	assert.True(t, hasSearchFilters("a nice dress"))
	assert.False(t, hasSearchFilters("Levi Strauss Denim Trucker and The North Face Parka"))
}
