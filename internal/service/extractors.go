package service

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"shopbot/internal/model"
)

// Entity extractors. Each pulls one typed value out of free text; extraction
// order inside each function is fixed and significant.

var (
	priceRe   = regexp.MustCompile(`\$(\d+(\.\d+)?)`)
	bareIntRe = regexp.MustCompile(`\b(\d+)\b`)
)

// extractPriceConstraint returns the dollar amount and its comparator. A nil
// price means no constraint; the operator is set iff the price is set.
func extractPriceConstraint(message string) (*float64, model.PriceOp) {
	msg := strings.ToLower(message)

	m := priceRe.FindStringSubmatch(msg)
	if m == nil {
		return nil, ""
	}

	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, ""
	}

	if strings.Contains(msg, "over") || strings.Contains(msg, "above") || strings.Contains(msg, "more than") {
		return &price, model.PriceOpOver
	}

	if strings.Contains(msg, "under") || strings.Contains(msg, "below") || strings.Contains(msg, "less than") {
		return &price, model.PriceOpUnder
	}

	// "$4 jackets", "priced $4"
	return &price, model.PriceOpExact
}

// sizeKeywords maps size words to canonical codes. Order is significant:
// "xl" is checked before "xxl", so a message containing "xxl" resolves to
// "xl" (substring hit).
var sizeKeywords = []struct {
	keyword string
	code    string
}{
	{"small", "s"},
	{"medium", "m"},
	{"large", "l"},
	{"xl", "xl"},
	{"xxl", "xxl"},
}

func detectSize(message string) *string {
	msg := strings.ToLower(message)
	for _, s := range sizeKeywords {
		if strings.Contains(msg, s.keyword) {
			code := s.code
			return &code
		}
	}
	return nil
}

var categoryKeywords = []string{
	"jacket", "coat", "hoodie", "sweater", "shirt", "dress", "pants",
}

func detectCategoryKeyword(message string) *string {
	msg := strings.ToLower(message)
	for _, k := range categoryKeywords {
		if strings.Contains(msg, k) {
			category := k
			return &category
		}
	}
	return nil
}

// Canonical recipient keyword sets. The female set is checked first, so it
// wins if a message somehow matches both.
var (
	femaleRecipients = []string{
		"girlfriend", "wife", "mother", "mom",
		"sister", "daughter", "grandmother",
	}
	maleRecipients = []string{
		"boyfriend", "husband", "father", "dad",
		"brother", "son", "grandfather", "him",
	}
)

// detectRecipientGender resolves the department of an explicitly named gift
// recipient, or nil when no recipient is mentioned.
func detectRecipientGender(message string) *string {
	msg := strings.ToLower(message)

	if containsAny(msg, femaleRecipients) {
		dept := model.DepartmentWomen
		return &dept
	}

	if containsAny(msg, maleRecipients) {
		dept := model.DepartmentMen
		return &dept
	}

	return nil
}

// extractStoreLimit returns the first bare integer in the message capped at
// max, defaulting to 1 when the message carries no digits.
func extractStoreLimit(message string, max int) int {
	m := bareIntRe.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// extractStoreID parses an explicit store id ("store details 3").
func extractStoreID(message string) (int64, bool) {
	m := bareIntRe.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// storeIntentPatterns are stripped from the message before product
// extraction, most specific first.
var storeIntentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)closest store with`),
	regexp.MustCompile(`(?i)nearest store with`),
	regexp.MustCompile(`(?i)closest shop with`),
	regexp.MustCompile(`(?i)nearest shop with`),
	regexp.MustCompile(`(?i)closest store`),
	regexp.MustCompile(`(?i)nearest store`),
	regexp.MustCompile(`(?i)closest`),
	regexp.MustCompile(`(?i)nearest`),
}

// categoryPhrases are checked against the stripped message in order;
// multi-word forms come before their single-word prefixes.
var categoryPhrases = []string{
	"winter jacket", "winter jackets",
	"jacket", "jackets",
	"coat", "coats",
	"hoodie", "hoodies",
	"sweater", "sweaters",
	"shirt", "shirts",
	"dress", "pants",
}

// extractProductForStoreSearch pulls the product phrase out of a
// store-proximity message: strip the intent wording, try the category phrase
// list, then fall back to a run of capitalized words that looks like a
// literal product name.
func extractProductForStoreSearch(message string) *string {
	cleaned := strings.TrimSpace(message)
	for _, p := range storeIntentPatterns {
		cleaned = strings.TrimSpace(p.ReplaceAllString(cleaned, ""))
	}

	lowered := strings.ToLower(cleaned)
	for _, c := range categoryPhrases {
		if strings.Contains(lowered, c) {
			phrase := c
			return &phrase
		}
	}

	var productWords []string
	for _, w := range strings.Fields(cleaned) {
		runes := []rune(w)
		if len(runes) > 2 && unicode.IsUpper(runes[0]) {
			productWords = append(productWords, w)
		}
	}

	if len(productWords) >= 3 {
		name := strings.Join(productWords, " ")
		return &name
	}

	return nil
}

// looksLikeProductName is the heuristic for a literal product name: long
// enough and carrying several capitalized words (brand, model, etc.).
func looksLikeProductName(text string) bool {
	if len(text) < 15 {
		return false
	}

	capitalWords := 0
	for _, w := range strings.Fields(text) {
		if r := []rune(w); len(r) > 0 && unicode.IsUpper(r[0]) {
			capitalWords++
		}
	}
	return capitalWords >= 3
}

// extractComparisonProducts splits the message on the first " and " and
// returns both sides when each independently looks like a product name.
// The extraction is all-or-nothing: a failed side rejects the whole pair.
func extractComparisonProducts(message string) (string, string, bool) {
	idx := strings.Index(strings.ToLower(message), " and ")
	if idx < 0 {
		return "", "", false
	}

	left := strings.TrimSpace(message[:idx])
	right := strings.TrimSpace(message[idx+len(" and "):])

	if looksLikeProductName(left) && looksLikeProductName(right) {
		return left, right, true
	}

	return "", "", false
}

// extractStoreFilters builds the optional filter set for a filtered
// closest-store search.
func extractStoreFilters(message string) model.FilterSet {
	price, priceOp := extractPriceConstraint(message)

	return model.FilterSet{
		Product:    extractProductForStoreSearch(message),
		Category:   detectCategoryKeyword(message),
		Price:      price,
		PriceOp:    priceOp,
		Size:       detectSize(message),
		Department: detectRecipientGender(message),
	}
}
