package model

// PriceOp describes how an extracted price bound applies.
type PriceOp string

const (
	PriceOpUnder PriceOp = "under"
	PriceOpOver  PriceOp = "over"
	// PriceOpExact matches within a ±$0.01 tolerance band, not strict
	// equality, so "$25 jackets" tolerates float formatting.
	PriceOpExact PriceOp = "exact"
)

// Department values follow the catalog's department column.
const (
	DepartmentMen   = "Men"
	DepartmentWomen = "Women"
)

// FilterSet represents structured search criteria extracted from a message.
// PriceOp is set iff Price is set.
type FilterSet struct {
	Category   *string  `json:"category,omitempty"`
	Size       *string  `json:"size,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	PriceOp    PriceOp  `json:"price_op,omitempty"`
	Department *string  `json:"department,omitempty"`
	Product    *string  `json:"product,omitempty"`
}

// HasAny reports whether at least one filter is present.
func (f *FilterSet) HasAny() bool {
	if f == nil {
		return false
	}
	return f.Category != nil || f.Size != nil || f.Price != nil ||
		f.Department != nil || f.Product != nil
}

// StoreQuery is the filter set used for store-proximity lookups.
// Limit is always in [1,10].
type StoreQuery struct {
	FilterSet
	Limit int `json:"limit"`
}

// SavedFilters is the session-memory record written by product searches and
// read by quick-reply follow-ups. Price is deliberately never remembered:
// every relax-price continuation means "drop the price constraint".
type SavedFilters struct {
	Category   *string `json:"category,omitempty"`
	Size       *string `json:"size,omitempty"`
	Department *string `json:"department,omitempty"`
}
