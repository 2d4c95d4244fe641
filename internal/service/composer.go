package service

import (
	"fmt"
	"strconv"
	"strings"

	"shopbot/internal/model"
)

// Reply composition for the generic catalog search. The wording enumerates
// whichever filters were active, in a fixed order: category, department,
// size, price.

// emptyResultQuickReplies map back to the relax-price phrases on the next
// turn. Order is fixed.
var emptyResultQuickReplies = []string{
	"Increase budget",
	"Remove size filter",
	"Show similar items",
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func priceClause(price *float64, op model.PriceOp) string {
	switch op {
	case model.PriceOpUnder:
		return fmt.Sprintf("under $%s", fmtNum(*price))
	case model.PriceOpOver:
		return fmt.Sprintf("over $%s", fmtNum(*price))
	case model.PriceOpExact:
		return fmt.Sprintf("priced at $%s", fmtNum(*price))
	}
	return ""
}

// composeSearchReply phrases a successful generic search.
func composeSearchReply(f *model.FilterSet) string {
	parts := []string{"Here are"}

	if f.Category != nil {
		parts = append(parts, *f.Category+"s")
	}
	if f.Department != nil {
		parts = append(parts, "for "+strings.ToLower(*f.Department))
	}
	if f.Size != nil {
		parts = append(parts, "in size "+strings.ToUpper(*f.Size))
	}
	if f.Price != nil {
		parts = append(parts, priceClause(f.Price, f.PriceOp))
	}

	return strings.Join(parts, " ") + "."
}

// composeEmptyResultReply explains a zero-row search from the active filters
// and offers the fixed quick-reply suggestions.
func composeEmptyResultReply(f *model.FilterSet) *model.ChatResponse {
	var reasons []string

	if f.Category != nil {
		reasons = append(reasons, *f.Category+"s")
	}
	if f.Department != nil {
		reasons = append(reasons, "for "+strings.ToLower(*f.Department))
	}
	if f.Size != nil {
		reasons = append(reasons, "size "+strings.ToUpper(*f.Size))
	}
	if f.Price != nil {
		reasons = append(reasons, priceClause(f.Price, f.PriceOp))
	}

	return &model.ChatResponse{
		Reply: fmt.Sprintf(
			"Sorry, I couldn’t find any items %s. Would you like to adjust your filters?",
			strings.Join(reasons, " "),
		),
		QuickReplies: emptyResultQuickReplies,
	}
}

// composeStoreList renders numbered "1. Name — 3.2 km" lines.
func composeStoreList(stores []model.Store) string {
	lines := make([]string, 0, len(stores))
	for i, s := range stores {
		lines = append(lines, fmt.Sprintf("%d. %s — %s km", i+1, s.Name, fmtNum(s.DistanceKM)))
	}
	return strings.Join(lines, "\n")
}
