package model

// Intent is the resolved category of a user request. Exactly one intent is
// produced per message; it drives which downstream query path executes.
type Intent string

const (
	IntentShowCart                Intent = "show_cart"
	IntentGift                    Intent = "gift"
	IntentCompare                 Intent = "compare"
	IntentPriceSearch             Intent = "price_search"
	IntentSizeSearch              Intent = "size_search"
	IntentSearch                  Intent = "search"
	IntentStoreDetails            Intent = "store_details"
	IntentStoreProductSearch      Intent = "store_product_search"
	IntentClosestStoreWithProduct Intent = "closest_store_with_product"
	IntentClosestStore            Intent = "closest_store"
	IntentCheapestStore           Intent = "cheapest_store"
	IntentRelaxPrice              Intent = "relax_price"
)
