package model

import "encoding/json"

// Location is the requesting user's coordinates, attached to payloads that
// the map UI renders.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ChatResponse is the reply for GET /chat. Only the fields relevant to the
// resolved intent are populated.
type ChatResponse struct {
	Reply        string    `json:"reply"`
	Products     []Product `json:"products,omitempty"`
	Stores       []Store   `json:"stores,omitempty"`
	Action       string    `json:"action,omitempty"`
	QuickReplies []string  `json:"quick_replies,omitempty"`
	UserLocation *Location `json:"user_location,omitempty"`
}

// CartItem is an opaque cart entry; the server echoes whatever the client
// put in the cart without interpreting it.
type CartItem = json.RawMessage

// CartResponse is the reply for POST /cart.
type CartResponse struct {
	Reply string     `json:"reply"`
	Cart  []CartItem `json:"cart"`
}

// CheckoutRequest is the body of POST /checkout.
type CheckoutRequest struct {
	Cart []CartItem `json:"cart"`
}

// CheckoutResponse is the reply for a successful checkout.
type CheckoutResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}
