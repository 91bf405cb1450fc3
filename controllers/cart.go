package controllers

import (
	"encoding/json"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"eggshop/middleware"
	"eggshop/models"
	"eggshop/services"
	"eggshop/storage"
	"eggshop/validation"
)

// CartController handles the transient per-customer carts
type CartController struct {
	Store    *storage.Store
	Carts    *services.CartService
	Validate *validatorv10.Validate
}

// NewCartController creates a new CartController
func NewCartController(store *storage.Store, carts *services.CartService, v *validatorv10.Validate) *CartController {
	return &CartController{Store: store, Carts: carts, Validate: v}
}

// currentCustomer resolves the authenticated customer from the request
// context. It writes the error response itself on failure.
func (cc *CartController) currentCustomer(w http.ResponseWriter, r *http.Request) (models.Customer, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Role != string(models.RoleCustomer) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return models.Customer{}, false
	}
	customer, found := cc.Store.GetCustomerByPhone(claims.Phone)
	if !found {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return models.Customer{}, false
	}
	return customer, true
}

// GetCart returns the customer's current cart.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	customer, ok := cc.currentCustomer(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cc.Carts.Get(customer.ID))
}

// AddToCart adds one unit of a product to the customer's cart.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	customer, ok := cc.currentCustomer(w, r)
	if !ok {
		return
	}

	var req validation.AddToCartRequest
	if err := validation.BindAndValidate(w, r, &req, cc.Validate); err != nil {
		return
	}

	var product *models.Product
	for _, p := range cc.Store.GetProducts() {
		if p.ID == req.ProductID && p.Active {
			product = &p
			break
		}
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	cart := cc.Carts.Add(customer.ID, *product)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}

// UpdateCart adjusts a cart line by a signed delta. Lines that reach zero
// are removed.
func (cc *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	customer, ok := cc.currentCustomer(w, r)
	if !ok {
		return
	}

	var req validation.UpdateCartRequest
	if err := validation.BindAndValidate(w, r, &req, cc.Validate); err != nil {
		return
	}

	cart := cc.Carts.UpdateQuantity(customer.ID, req.ProductID, req.Delta)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cart)
}
