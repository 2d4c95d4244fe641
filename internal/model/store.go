package model

// Store represents a distribution center row with its distance from the
// requesting user. CheapestPrice is populated only by the cheapest-store
// query.
type Store struct {
	ID            int64    `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Latitude      float64  `json:"latitude" db:"latitude"`
	Longitude     float64  `json:"longitude" db:"longitude"`
	DistanceKM    float64  `json:"distance_km" db:"distance_km"`
	CheapestPrice *float64 `json:"cheapest_price,omitempty" db:"cheapest_price"`
}

// StoreDetails aggregates a single store's inventory figures.
type StoreDetails struct {
	ID                 int64    `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	Latitude           float64  `json:"latitude" db:"latitude"`
	Longitude          float64  `json:"longitude" db:"longitude"`
	ProductCount       int      `json:"product_count" db:"product_count"`
	CheapestPrice      *float64 `json:"cheapest_price" db:"cheapest_price"`
	MostExpensivePrice *float64 `json:"most_expensive_price" db:"most_expensive_price"`
}
