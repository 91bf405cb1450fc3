package models

// ProductType labels the kind of egg a package contains. The labels are
// display-only; no behavior hangs off them.
type ProductType string

const (
	TypeWhite     ProductType = "white"
	TypeBrown     ProductType = "brown"
	TypeFreeRange ProductType = "free_range"
	TypeOrganic   ProductType = "organic"
	TypeQuail     ProductType = "quail"
)

// KnownProductTypes lists every valid ProductType for boundary validation.
var KnownProductTypes = []ProductType{TypeWhite, TypeBrown, TypeFreeRange, TypeOrganic, TypeQuail}

// Product represents one egg package in the catalog
type Product struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Type               ProductType `json:"type"`
	Description        string      `json:"description"`
	QuantityPerPackage int         `json:"quantity_per_package"`
	Price              float64     `json:"price"`
	ImageURL           string      `json:"image_url"`
	Active             bool        `json:"active"` // inactive products are hidden from the catalog, not deleted
	IsPromo            bool        `json:"is_promo"`
}

// CartItem is a product snapshot plus the quantity currently in the cart.
// Cart items live only in memory and are never persisted on their own.
type CartItem struct {
	Product
	CartQuantity int `json:"cart_quantity"`
}
