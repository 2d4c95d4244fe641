package model

import "time"

// Product represents a catalog product row joined with its distribution
// center name.
type Product struct {
	ID                   int64   `json:"id" db:"id"`
	Name                 string  `json:"name" db:"name"`
	Category             string  `json:"category" db:"category"`
	Brand                *string `json:"brand,omitempty" db:"brand"`
	Department           string  `json:"department" db:"department"`
	RetailPrice          float64 `json:"retail_price" db:"retail_price"`
	SKU                  string  `json:"sku" db:"sku"`
	DistributionCenterID int64   `json:"distribution_center_id" db:"distribution_center_id"`
	DistributionName     *string `json:"distribution_name,omitempty" db:"distribution_name"`
}

// User represents a row from the users table. The process serves exactly one
// configured user, resolved once at startup.
type User struct {
	ID            int64      `json:"id" db:"id"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" db:"last_name"`
	Email         string     `json:"email" db:"email"`
	Age           *int       `json:"age,omitempty" db:"age"`
	Gender        string     `json:"gender" db:"gender"`
	State         *string    `json:"state,omitempty" db:"state"`
	StreetAddress *string    `json:"street_address,omitempty" db:"street_address"`
	PostalCode    *string    `json:"postal_code,omitempty" db:"postal_code"`
	City          *string    `json:"city,omitempty" db:"city"`
	Country       *string    `json:"country,omitempty" db:"country"`
	Latitude      *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64   `json:"longitude,omitempty" db:"longitude"`
	TrafficSource *string    `json:"traffic_source,omitempty" db:"traffic_source"`
	CreatedAt     *time.Time `json:"created_at,omitempty" db:"created_at"`
}

// HasLocation reports whether the user has recorded coordinates.
func (u *User) HasLocation() bool {
	return u != nil && u.Latitude != nil && u.Longitude != nil
}
