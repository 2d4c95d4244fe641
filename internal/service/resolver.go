package service

import (
	"strings"

	"go.uber.org/zap"

	"shopbot/internal/model"
)

// Resolution is the outcome of classifying one message: a single intent plus
// every entity the downstream handler needs. The chat service switches over
// Intent; nothing downstream re-inspects the raw message except the
// "this product" clarification check.
type Resolution struct {
	Intent  model.Intent
	Filters model.FilterSet

	// Store id for the store-details / search-store UI actions.
	StoreID    int64
	HasStoreID bool

	// Result limit for store-proximity searches, already capped.
	Limit int

	// Product phrase for closest-store-with-product; nil means the
	// handler should ask for clarification instead of querying.
	Product *string

	// Comparison subjects; both set or both empty.
	CompareA string
	CompareB string

	// QuickReply marks a relax-price continuation reusing remembered
	// filters. Continuations never overwrite the session memory.
	QuickReply bool
}

// Resolver turns a raw message into a Resolution. Classification is a fixed
// cascade: the first matching rule wins and later rules are not consulted.
type Resolver struct {
	sessions      *SessionStore
	storeLimitMax int
	log           *zap.Logger
}

// NewResolver creates a resolver backed by the given session store.
func NewResolver(sessions *SessionStore, storeLimitMax int, log *zap.Logger) *Resolver {
	return &Resolver{
		sessions:      sessions,
		storeLimitMax: storeLimitMax,
		log:           log,
	}
}

// Resolve classifies a message for the given user. Precedence, first match
// wins:
//
//  1. "store details" prefix
//  2. "search store" prefix
//  3. relax-price quick reply (only with remembered filters)
//  4. cheapest nearby store
//  5. closest store with product
//  6. closest store
//  7. show cart
//  8. comparison (explicit marker, or a product pair with no other filters)
//  9. generic catalog search (gift / price / size / plain label)
//
// Steps 8-9 share the filter extraction and the session-memory write.
func (r *Resolver) Resolve(message string, user *model.User) *Resolution {
	if strings.HasPrefix(message, "store details") {
		id, ok := extractStoreID(message)
		return &Resolution{Intent: model.IntentStoreDetails, StoreID: id, HasStoreID: ok}
	}

	if strings.HasPrefix(message, "search store") {
		id, ok := extractStoreID(message)
		return &Resolution{Intent: model.IntentStoreProductSearch, StoreID: id, HasStoreID: ok}
	}

	if isRelaxPriceIntent(message) {
		if saved, ok := r.sessions.Last(user.ID); ok {
			// Reuse category/size/department from the last search
			// and drop the price constraint entirely.
			r.log.Debug("relax-price continuation", zap.Int64("user_id", user.ID))
			return &Resolution{
				Intent: model.IntentRelaxPrice,
				Filters: model.FilterSet{
					Category:   saved.Category,
					Size:       saved.Size,
					Department: saved.Department,
				},
				QuickReply: true,
			}
		}
	}

	if isCheapestStoreIntent(message) {
		return &Resolution{Intent: model.IntentCheapestStore}
	}

	if isClosestStoreWithProductIntent(message) {
		return &Resolution{
			Intent:  model.IntentClosestStoreWithProduct,
			Product: extractProductForStoreSearch(message),
			Limit:   extractStoreLimit(message, r.storeLimitMax),
		}
	}

	if isClosestStoreIntent(message) {
		return &Resolution{
			Intent:  model.IntentClosestStore,
			Filters: extractStoreFilters(message),
			Limit:   extractStoreLimit(message, r.storeLimitMax),
		}
	}

	if isShowCartIntent(message) {
		return &Resolution{Intent: model.IntentShowCart}
	}

	return r.resolveCatalogSearch(message, user)
}

// resolveCatalogSearch handles the remaining catalog path: filter
// extraction, department resolution, the session-memory write, and the
// comparison check.
func (r *Resolver) resolveCatalogSearch(message string, user *model.User) *Resolution {
	price, priceOp := extractPriceConstraint(message)
	size := detectSize(message)
	category := detectCategoryKeyword(message)
	giftIntent := isGiftIntent(message)
	recipient := detectRecipientGender(message)

	// Department priority: explicit recipient hard-locks it; a gift with
	// no recipient searches both departments; otherwise default from the
	// requesting user's own gender.
	var department *string
	switch {
	case recipient != nil:
		department = recipient
	case giftIntent:
		department = nil
	default:
		switch user.Gender {
		case "M":
			dept := model.DepartmentMen
			department = &dept
		case "F":
			dept := model.DepartmentWomen
			department = &dept
		}
	}

	r.sessions.Save(user.ID, model.SavedFilters{
		Category:   category,
		Size:       size,
		Department: department,
	})

	p1, p2, havePair := extractComparisonProducts(message)
	explicitCompare := hasCompareMarker(message)
	implicitCompare := havePair && !hasSearchFilters(message)

	if explicitCompare || implicitCompare {
		return &Resolution{
			Intent:   model.IntentCompare,
			CompareA: p1,
			CompareB: p2,
		}
	}

	res := &Resolution{
		Filters: model.FilterSet{
			Category:   category,
			Size:       size,
			Price:      price,
			PriceOp:    priceOp,
			Department: department,
		},
	}

	// The remaining labels are cosmetic: all of them route through the
	// same generic filtered query.
	switch {
	case giftIntent:
		res.Intent = model.IntentGift
	case price != nil:
		res.Intent = model.IntentPriceSearch
	case size != nil:
		res.Intent = model.IntentSizeSearch
	default:
		res.Intent = model.IntentSearch
	}

	return res
}
