package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/model"
)

func TestExtractPriceConstraint(t *testing.T) {
	tests := []struct {
		name    string
		message string
		price   float64
		op      model.PriceOp
		none    bool
	}{
		{name: "under", message: "Show me jackets under $10", price: 10, op: model.PriceOpUnder},
		{name: "below", message: "anything below $15 please", price: 15, op: model.PriceOpUnder},
		{name: "less than", message: "something less than $12.50", price: 12.5, op: model.PriceOpUnder},
		{name: "over", message: "Show me jackets over $50", price: 50, op: model.PriceOpOver},
		{name: "above", message: "coats above $99.99", price: 99.99, op: model.PriceOpOver},
		{name: "more than", message: "more than $30 is fine", price: 30, op: model.PriceOpOver},
		{name: "exact", message: "Show me $25 jackets", price: 25, op: model.PriceOpExact},
		{name: "no dollar sign", message: "under 10 dollars", none: true},
		{name: "no price", message: "show me jackets", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, op := extractPriceConstraint(tt.message)
			if tt.none {
				assert.Nil(t, price)
				assert.Empty(t, op)
				return
			}
			require.NotNil(t, price)
			assert.Equal(t, tt.price, *price)
			assert.Equal(t, tt.op, op)
		})
	}
}

func TestDetectSize(t *testing.T) {
	tests := []struct {
		message string
		want    string
		none    bool
	}{
		{message: "small jacket", want: "s"},
		{message: "Medium hoodie", want: "m"},
		{message: "LARGE coat", want: "l"},
		{message: "XL coat", want: "xl"},
		// "xl" is checked before "xxl" and matches as a substring.
		{message: "xxl sweater", want: "xl"},
		{message: "show me jackets", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := detectSize(tt.message)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDetectCategoryKeyword(t *testing.T) {
	tests := []struct {
		message string
		want    string
		none    bool
	}{
		{message: "winter jackets", want: "jacket"},
		{message: "nice dress", want: "dress"},
		{message: "a Coat for winter", want: "coat"},
		// "jacket" is checked before "coat".
		{message: "jacket or coat", want: "jacket"},
		{message: "show me shoes", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := detectCategoryKeyword(tt.message)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDetectRecipientGender(t *testing.T) {
	tests := []struct {
		message string
		want    string
		none    bool
	}{
		{message: "gift for my girlfriend", want: "Women"},
		{message: "gift for my father", want: "Men"},
		{message: "something for my grandmother", want: "Women"},
		{message: "buy it for him", want: "Men"},
		// Female set is checked first.
		{message: "for my wife and my husband", want: "Women"},
		{message: "show me jackets", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := detectRecipientGender(tt.message)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractStoreLimit(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
	}{
		{name: "explicit number", message: "show me 3 nearest stores", want: 3},
		{name: "capped at max", message: "show me 25 nearest stores", want: 10},
		{name: "default when absent", message: "closest store", want: 1},
		{name: "first number wins", message: "2 stores within 50 km", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractStoreLimit(tt.message, 10))
		})
	}
}

func TestExtractStoreID(t *testing.T) {
	id, ok := extractStoreID("store details 7")
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	_, ok = extractStoreID("store details")
	assert.False(t, ok)
}

func TestExtractProductForStoreSearch(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		none    bool
	}{
		{name: "category phrase", message: "closest store with winter jackets", want: "winter jacket"},
		{name: "single-word category", message: "nearest shop with hoodies", want: "hoodie"},
		{name: "capitalized product name", message: "closest store with Levi Strauss Denim Trucker", want: "Levi Strauss Denim Trucker"},
		{name: "too few capitalized words", message: "closest store with socks", none: true},
		// Words of two characters or fewer never count toward a name.
		{name: "short capitalized words dropped", message: "nearest store with My Big Co Xl", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractProductForStoreSearch(tt.message)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestLooksLikeProductName(t *testing.T) {
	assert.True(t, looksLikeProductName("Levi Strauss Denim Trucker Jacket"))
	assert.False(t, looksLikeProductName("short"))
	assert.False(t, looksLikeProductName("a plain lowercase sentence here"))
	assert.False(t, looksLikeProductName("Only Two Caps"))
}

func TestExtractComparisonProducts(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		a, b, ok := extractComparisonProducts(
			"Levi Strauss Denim Trucker Jacket and The North Face Mountain Parka",
		)
		require.True(t, ok)
		assert.Equal(t, "Levi Strauss Denim Trucker Jacket", a)
		assert.Equal(t, "The North Face Mountain Parka", b)
	})

	t.Run("all or nothing", func(t *testing.T) {
		// Right side fails the heuristic, so both subjects are absent.
		a, b, ok := extractComparisonProducts(
			"Levi Strauss Denim Trucker Jacket and socks",
		)
		assert.False(t, ok)
		assert.Empty(t, a)
		assert.Empty(t, b)
	})

	t.Run("no separator", func(t *testing.T) {
		_, _, ok := extractComparisonProducts("Levi Strauss Denim Trucker Jacket")
		assert.False(t, ok)
	})

	t.Run("case-insensitive separator", func(t *testing.T) {
		a, b, ok := extractComparisonProducts(
			"Levi Strauss Denim Trucker Jacket And The North Face Mountain Parka",
		)
		require.True(t, ok)
		assert.Equal(t, "Levi Strauss Denim Trucker Jacket", a)
		assert.Equal(t, "The North Face Mountain Parka", b)
	})
}
