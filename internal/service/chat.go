package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"shopbot/internal/model"
)

const (
	cheapestStoreLimit = 5
	storeProductLimit  = 10
)

// ChatService runs the chat pipeline: resolve the message into an intent,
// execute the matching catalog/store lookup, compose the reply.
type ChatService struct {
	catalog      ProductCatalog
	stores       StoreDirectory
	resolver     *Resolver
	user         *model.User
	productLimit int
	queryTimeout time.Duration
	log          *zap.Logger
}

// NewChatService creates a chat service bound to the configured user.
func NewChatService(
	catalog ProductCatalog,
	stores StoreDirectory,
	resolver *Resolver,
	user *model.User,
	productLimit int,
	queryTimeout time.Duration,
	log *zap.Logger,
) *ChatService {
	return &ChatService{
		catalog:      catalog,
		stores:       stores,
		resolver:     resolver,
		user:         user,
		productLimit: productLimit,
		queryTimeout: queryTimeout,
		log:          log,
	}
}

// Chat handles one message end to end. Every lookup runs under the
// configured query timeout; failures are terminal for the request.
func (s *ChatService) Chat(ctx context.Context, message string) (*model.ChatResponse, error) {
	res := s.resolver.Resolve(message, s.user)

	s.log.Info("resolved intent",
		zap.String("intent", string(res.Intent)),
		zap.Bool("quick_reply", res.QuickReply),
	)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	switch res.Intent {
	case model.IntentStoreDetails:
		return s.storeDetails(ctx, res)
	case model.IntentStoreProductSearch:
		return s.storeProducts(ctx, res)
	case model.IntentCheapestStore:
		return s.cheapestStores(ctx)
	case model.IntentClosestStoreWithProduct:
		return s.closestStoreWithProduct(ctx, res)
	case model.IntentClosestStore:
		return s.closestStore(ctx, message, res)
	case model.IntentShowCart:
		return &model.ChatResponse{
			Reply:  "Here’s what’s currently in your cart 👇",
			Action: "show_cart",
		}, nil
	case model.IntentCompare:
		return s.compareProducts(ctx, res)
	default:
		return s.searchProducts(ctx, res)
	}
}

// attachUserLocation adds the user's coordinates to payloads the map UI
// renders.
func (s *ChatService) attachUserLocation(resp *model.ChatResponse) *model.ChatResponse {
	resp.UserLocation = &model.Location{
		Latitude:  *s.user.Latitude,
		Longitude: *s.user.Longitude,
	}
	return resp
}

func (s *ChatService) storeDetails(ctx context.Context, res *Resolution) (*model.ChatResponse, error) {
	if !res.HasStoreID {
		return &model.ChatResponse{Reply: "Store not found 😕"}, nil
	}

	details, err := s.stores.StoreDetails(ctx, res.StoreID)
	if err != nil {
		return nil, fmt.Errorf("store details lookup: %w", err)
	}
	if details == nil {
		return &model.ChatResponse{Reply: "Store not found 😕"}, nil
	}

	var cheapest, mostExpensive float64
	if details.CheapestPrice != nil {
		cheapest = *details.CheapestPrice
	}
	if details.MostExpensivePrice != nil {
		mostExpensive = *details.MostExpensivePrice
	}

	return &model.ChatResponse{
		Reply: fmt.Sprintf(
			"🏪 %s\n• Products: %d\n• Cheapest item: $%s\n• Most expensive item: $%s",
			details.Name, details.ProductCount, fmtNum(cheapest), fmtNum(mostExpensive),
		),
		Stores: []model.Store{{
			ID:         details.ID,
			Name:       details.Name,
			Latitude:   details.Latitude,
			Longitude:  details.Longitude,
			DistanceKM: 0,
		}},
	}, nil
}

func (s *ChatService) storeProducts(ctx context.Context, res *Resolution) (*model.ChatResponse, error) {
	if !res.HasStoreID {
		return &model.ChatResponse{Reply: "No products found in this store 😕"}, nil
	}

	products, err := s.catalog.ProductsInStore(ctx, res.StoreID, storeProductLimit)
	if err != nil {
		return nil, fmt.Errorf("store products lookup: %w", err)
	}
	if len(products) == 0 {
		return &model.ChatResponse{Reply: "No products found in this store 😕"}, nil
	}

	return &model.ChatResponse{
		Reply:    "🛍 Products available in this store:",
		Products: products,
	}, nil
}

func (s *ChatService) cheapestStores(ctx context.Context) (*model.ChatResponse, error) {
	if !s.user.HasLocation() {
		return &model.ChatResponse{Reply: "I don’t have your location to find nearby stores."}, nil
	}

	stores, err := s.stores.CheapestStores(ctx, *s.user.Latitude, *s.user.Longitude, cheapestStoreLimit)
	if err != nil {
		return nil, fmt.Errorf("cheapest stores lookup: %w", err)
	}
	if len(stores) == 0 {
		return &model.ChatResponse{Reply: "I couldn’t find nearby stores 😕"}, nil
	}

	var b strings.Builder
	b.WriteString("💰 Cheapest nearby stores:\n\n")
	for i, st := range stores {
		var price float64
		if st.CheapestPrice != nil {
			price = *st.CheapestPrice
		}
		fmt.Fprintf(&b, "%d. %s — $%s (%s km)\n", i+1, st.Name, fmtNum(price), fmtNum(st.DistanceKM))
	}

	return s.attachUserLocation(&model.ChatResponse{
		Reply:  b.String(),
		Stores: stores,
	}), nil
}

func (s *ChatService) closestStoreWithProduct(ctx context.Context, res *Resolution) (*model.ChatResponse, error) {
	if !s.user.HasLocation() {
		return &model.ChatResponse{Reply: "I don’t have your location to find nearby stores."}, nil
	}

	if res.Product == nil {
		return &model.ChatResponse{
			Reply: "Which product are you looking for?\n" +
				"You can say something like:\n" +
				"• Closest store with winter jackets\n" +
				"• Closest store with Levi’s Denim Jacket",
		}, nil
	}

	query := &model.StoreQuery{
		FilterSet: model.FilterSet{Product: res.Product},
		Limit:     res.Limit,
	}
	stores, err := s.stores.NearestStoresMatching(ctx, *s.user.Latitude, *s.user.Longitude, query)
	if err != nil {
		return nil, fmt.Errorf("nearest stores with product lookup: %w", err)
	}
	if len(stores) == 0 {
		return &model.ChatResponse{
			Reply: fmt.Sprintf("I couldn’t find nearby stores carrying %s.", *res.Product),
		}, nil
	}

	return s.attachUserLocation(&model.ChatResponse{
		Reply: fmt.Sprintf(
			"🏪 Here are the nearest stores with %s:\n\n%s",
			*res.Product, composeStoreList(stores),
		),
		Stores: stores,
	}), nil
}

func (s *ChatService) closestStore(ctx context.Context, message string, res *Resolution) (*model.ChatResponse, error) {
	if !s.user.HasLocation() {
		return &model.ChatResponse{Reply: "Sorry, I don’t have your location to find nearby stores."}, nil
	}

	// "closest store with this product" carries no extractable product.
	if strings.Contains(strings.ToLower(message), "this product") && res.Filters.Product == nil {
		return &model.ChatResponse{
			Reply: "Which product are you looking for? Please provide the product name.",
		}, nil
	}

	if res.Filters.HasAny() {
		query := &model.StoreQuery{FilterSet: res.Filters, Limit: res.Limit}
		stores, err := s.stores.NearestStoresMatching(ctx, *s.user.Latitude, *s.user.Longitude, query)
		if err != nil {
			return nil, fmt.Errorf("filtered store lookup: %w", err)
		}
		if len(stores) == 0 {
			return &model.ChatResponse{
				Reply: "I couldn’t find nearby stores matching those criteria 😕",
			}, nil
		}

		var b strings.Builder
		b.WriteString("🏪 Nearest matching stores:\n\n")
		for i, st := range stores {
			fmt.Fprintf(&b, "%d️⃣ %s — %s km\n", i+1, st.Name, fmtNum(st.DistanceKM))
		}

		return s.attachUserLocation(&model.ChatResponse{
			Reply:  b.String(),
			Stores: stores,
		}), nil
	}

	stores, err := s.stores.NearestStores(ctx, *s.user.Latitude, *s.user.Longitude, res.Limit)
	if err != nil {
		return nil, fmt.Errorf("nearest stores lookup: %w", err)
	}
	if len(stores) == 0 {
		return &model.ChatResponse{Reply: "I couldn’t find any nearby stores."}, nil
	}

	if res.Limit == 1 {
		st := stores[0]
		return s.attachUserLocation(&model.ChatResponse{
			Reply: fmt.Sprintf(
				"📍 The closest store to you is %s, about %s km away.",
				st.Name, fmtNum(st.DistanceKM),
			),
			Stores: stores,
		}), nil
	}

	return s.attachUserLocation(&model.ChatResponse{
		Reply: fmt.Sprintf(
			"📍 Here are the %d nearest stores to you:\n\n%s",
			len(stores), composeStoreList(stores),
		),
		Stores: stores,
	}), nil
}

func (s *ChatService) compareProducts(ctx context.Context, res *Resolution) (*model.ChatResponse, error) {
	if res.CompareA == "" || res.CompareB == "" {
		return &model.ChatResponse{
			Reply: "Which two products would you like me to compare? Please provide their full names.",
		}, nil
	}

	products, err := s.catalog.FindProductsMatching(ctx, res.CompareA, res.CompareB)
	if err != nil {
		return nil, fmt.Errorf("comparison lookup: %w", err)
	}
	if len(products) < 2 {
		return &model.ChatResponse{
			Reply: "I couldn’t confidently match both products. Please try clearer product names.",
		}, nil
	}

	return &model.ChatResponse{
		Reply:    "Here’s a comparison of the two products you mentioned:",
		Products: products,
	}, nil
}

func (s *ChatService) searchProducts(ctx context.Context, res *Resolution) (*model.ChatResponse, error) {
	products, err := s.catalog.SearchProducts(ctx, &res.Filters, s.productLimit)
	if err != nil {
		return nil, fmt.Errorf("product search: %w", err)
	}

	if len(products) == 0 {
		return composeEmptyResultReply(&res.Filters), nil
	}

	resp := &model.ChatResponse{
		Reply:    composeSearchReply(&res.Filters),
		Products: products,
	}
	if s.user.HasLocation() {
		return s.attachUserLocation(resp), nil
	}
	return resp, nil
}
