package validation

// CustomerLoginRequest is the payload for POST /login.
type CustomerLoginRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// AdminLoginRequest is the payload for POST /admin/login.
type AdminLoginRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// ProductRequest is the payload for creating or updating a catalog
// product.
type ProductRequest struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name" validate:"required"`
	Type               string  `json:"type" validate:"required,oneof=white brown free_range organic quail"`
	Description        string  `json:"description,omitempty"`
	QuantityPerPackage int     `json:"quantity_per_package" validate:"required,gt=0"`
	Price              float64 `json:"price" validate:"gte=0"`
	ImageURL           string  `json:"image_url,omitempty"`
	Active             bool    `json:"active"`
	IsPromo            bool    `json:"is_promo"`
}

// AddToCartRequest adds one unit of a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateCartRequest adjusts a cart line quantity by a signed delta.
type UpdateCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Delta     int    `json:"delta" validate:"required"`
}

// AddressRequest is the delivery address collected at checkout. Street
// and number are the only fields the original flow insists on.
type AddressRequest struct {
	Street       string   `json:"street" validate:"required"`
	Number       string   `json:"number" validate:"required"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	City         string   `json:"city,omitempty"`
	ZipCode      string   `json:"zipcode,omitempty"`
	Reference    string   `json:"reference,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// CheckoutRequest is the payload for POST /orders.
type CheckoutRequest struct {
	Address        AddressRequest `json:"address" validate:"required"`
	PaymentMethod  string         `json:"payment_method" validate:"omitempty,oneof=pix cash card_on_delivery"`
	ChangeFor      string         `json:"change_for,omitempty"`
	Recurrence     string         `json:"recurrence" validate:"omitempty,oneof=one_time weekly biweekly monthly"`
	DeliveryPeriod string         `json:"delivery_period" validate:"omitempty,oneof=morning afternoon"`
}

// StatusUpdateRequest is the payload for PUT /orders/{id}/status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing delivering completed cancelled"`
}
