package models

import "time"

// Address represents a delivery address
type Address struct {
	Street       string   `json:"street"`
	Number       string   `json:"number"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city"`
	ZipCode      string   `json:"zipcode"`
	Reference    string   `json:"reference,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// Customer represents a storefront customer. The phone number is the
// business key: lookups and upserts match on it, never on ID.
type Customer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	Address       *Address   `json:"address,omitempty"` // last delivery address used
	TotalOrders   int        `json:"total_orders"`
	LastOrderDate *time.Time `json:"last_order_date,omitempty"`
}
