package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopbot/internal/model"
)

// CartHandler handles cart and checkout HTTP requests. Cart contents live on
// the client; the server only echoes and validates them.
type CartHandler struct{}

// NewCartHandler creates a new cart handler
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// ShowCart handles POST /cart with a JSON array body
func (h *CartHandler) ShowCart(c *gin.Context) {
	var cart []model.CartItem
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(cart) == 0 {
		c.JSON(http.StatusOK, model.CartResponse{
			Reply: "🛒 Your cart is empty.",
			Cart:  []model.CartItem{},
		})
		return
	}

	c.JSON(http.StatusOK, model.CartResponse{
		Reply: fmt.Sprintf("🛒 You have %d item(s) in your cart:", len(cart)),
		Cart:  cart,
	})
}

// Checkout handles POST /checkout. Demo mode: no order is persisted, the
// order id is the current unix timestamp.
func (h *CartHandler) Checkout(c *gin.Context) {
	var body struct {
		Cart json.RawMessage `json:"cart"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var cart []model.CartItem
	if body.Cart == nil || json.Unmarshal(body.Cart, &cart) != nil || len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	c.JSON(http.StatusOK, model.CheckoutResponse{
		OrderID: time.Now().UTC().Unix(),
		Message: "✅ Order placed successfully (demo mode)",
	})
}
