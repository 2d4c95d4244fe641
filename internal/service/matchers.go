package service

import "strings"

// Keyword matchers. Each predicate case-folds the message internally and
// tests it against a fixed keyword set. No fuzzy matching, no stemming.
// The predicates are independent of each other; only the order the resolver
// consults them in matters.

var showCartKeywords = []string{
	"show cart",
	"see cart",
	"view cart",
	"my cart",
	"items in cart",
	"show me cart",
	"show me items",
	"let me see my cart",
}

var giftKeywords = []string{
	"gift", "present", "buy for", "for my",
	"brother", "sister", "girlfriend", "boyfriend",
	"wife", "husband", "mom", "dad", "father", "mother",
}

// relaxPricePhrases are matched against the whole message, not as
// substrings. They are the quick-reply suggestions offered on an empty
// search result.
var relaxPricePhrases = []string{
	"increase budget",
	"raise budget",
	"higher budget",
	"remove price limit",
	"remove size filter",
	"show similar items",
}

var closestStoreWithProductKeywords = []string{
	"closest store with",
	"nearest store with",
	"closest shop with",
	"nearest shop with",
}

var closestStoreKeywords = []string{
	"closest store",
	"nearest store",
	"closest shop",
	"nearest shop",
	"closest distribution",
	"nearest distribution",
	"where is the closest store",
	"where is nearest store",
}

var cheapestStoreQualifiers = []string{
	"store", "stores", "shop", "nearby", "nearest", "closest",
}

// searchFilterKeywords mark a message as carrying at least one recognizable
// search filter; their presence suppresses implicit comparison mode.
var searchFilterKeywords = []string{
	"$", "under", "over", "below", "above", "less than", "more than",
	"small", "medium", "large", "xl", "xxl",
	"jacket", "coat", "hoodie", "sweater", "shirt", "dress", "pants",
}

func containsAny(msg string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}

func isShowCartIntent(message string) bool {
	return containsAny(strings.ToLower(message), showCartKeywords)
}

func isGiftIntent(message string) bool {
	return containsAny(strings.ToLower(message), giftKeywords)
}

func isRelaxPriceIntent(message string) bool {
	msg := strings.ToLower(message)
	for _, p := range relaxPricePhrases {
		if msg == p {
			return true
		}
	}
	return false
}

func isClosestStoreWithProductIntent(message string) bool {
	return containsAny(strings.ToLower(message), closestStoreWithProductKeywords)
}

func isClosestStoreIntent(message string) bool {
	return containsAny(strings.ToLower(message), closestStoreKeywords)
}

func isCheapestStoreIntent(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "cheapest") && containsAny(msg, cheapestStoreQualifiers)
}

func hasCompareMarker(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "compare") || strings.Contains(msg, "difference")
}

func hasSearchFilters(message string) bool {
	return containsAny(strings.ToLower(message), searchFilterKeywords)
}
