package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopbot/internal/model"
	"shopbot/internal/service"
)

type stubCatalog struct {
	products []model.Product
}

func (s *stubCatalog) SearchProducts(context.Context, *model.FilterSet, int) ([]model.Product, error) {
	return s.products, nil
}

func (s *stubCatalog) FindProductsMatching(context.Context, string, string) ([]model.Product, error) {
	return s.products, nil
}

func (s *stubCatalog) ProductsInStore(context.Context, int64, int) ([]model.Product, error) {
	return s.products, nil
}

type stubStores struct {
	stores []model.Store
}

func (s *stubStores) NearestStores(context.Context, float64, float64, int) ([]model.Store, error) {
	return s.stores, nil
}

func (s *stubStores) NearestStoresMatching(context.Context, float64, float64, *model.StoreQuery) ([]model.Store, error) {
	return s.stores, nil
}

func (s *stubStores) CheapestStores(context.Context, float64, float64, int) ([]model.Store, error) {
	return s.stores, nil
}

func (s *stubStores) StoreDetails(context.Context, int64) (*model.StoreDetails, error) {
	return nil, nil
}

func newChatRouter(catalog *stubCatalog, stores *stubStores) *gin.Engine {
	gin.SetMode(gin.TestMode)

	lat, lng := 40.7, -74.0
	user := &model.User{ID: 42, Gender: "M", Latitude: &lat, Longitude: &lng}

	logger := zap.NewNop()
	sessions := service.NewSessionStore()
	resolver := service.NewResolver(sessions, 10, logger)
	chatService := service.NewChatService(catalog, stores, resolver, user, 5, time.Second, logger)

	router := gin.New()
	router.GET("/chat", NewChatHandler(chatService, logger).Chat)
	return router
}

func getChat(router *gin.Engine, message string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	q := req.URL.Query()
	q.Set("message", message)
	req.URL.RawQuery = q.Encode()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatRequiresMessage(t *testing.T) {
	router := newChatRouter(&stubCatalog{}, &stubStores{})

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatSearchResponse(t *testing.T) {
	catalog := &stubCatalog{products: []model.Product{
		{ID: 1, Name: "Denim Jacket", Category: "Outerwear", Department: "Men", RetailPrice: 25},
	}}
	router := newChatRouter(catalog, &stubStores{})

	w := getChat(router, "show me jackets")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Reply)
	assert.Len(t, resp.Products, 1)
	require.NotNil(t, resp.UserLocation)
	assert.Equal(t, 40.7, resp.UserLocation.Latitude)
}

func TestChatEmptyResultResponse(t *testing.T) {
	router := newChatRouter(&stubCatalog{}, &stubStores{})

	w := getChat(router, "jackets under $5")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"Increase budget",
		"Remove size filter",
		"Show similar items",
	}, resp.QuickReplies)
}

func TestChatStoresResponse(t *testing.T) {
	stores := &stubStores{stores: []model.Store{
		{ID: 1, Name: "Memphis TN", DistanceKM: 3.2},
		{ID: 2, Name: "Houston TX", DistanceKM: 12.8},
	}}
	router := newChatRouter(&stubCatalog{}, stores)

	w := getChat(router, "closest store with winter jackets")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Stores, 2)
	assert.LessOrEqual(t, resp.Stores[0].DistanceKM, resp.Stores[1].DistanceKM)
	assert.Contains(t, resp.Reply, "1. Memphis TN")
}
