package services

import (
	"sync"

	"eggshop/models"
)

// CartService owns the transient carts, one per customer id. Carts are
// plain in-memory state: they are never persisted and do not survive a
// restart, which is fine because a cart only exists between login and
// checkout.
type CartService struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

// NewCartService creates an empty cart registry.
func NewCartService() *CartService {
	return &CartService{carts: make(map[string][]models.CartItem)}
}

// Add puts one unit of product into the customer's cart. Adding a product
// already in the cart increments its quantity instead of duplicating the
// line.
func (cs *CartService) Add(customerID string, product models.Product) []models.CartItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.carts[customerID]
	for i := range cart {
		if cart[i].ID == product.ID {
			cart[i].CartQuantity++
			cs.carts[customerID] = cart
			return cloneCart(cart)
		}
	}
	cart = append(cart, models.CartItem{Product: product, CartQuantity: 1})
	cs.carts[customerID] = cart
	return cloneCart(cart)
}

// UpdateQuantity adjusts a cart line by delta. A line that drops to zero
// or below is removed from the cart entirely. Unknown product ids are
// ignored.
func (cs *CartService) UpdateQuantity(customerID, productID string, delta int) []models.CartItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cart := cs.carts[customerID]
	kept := cart[:0]
	for _, item := range cart {
		if item.ID == productID {
			item.CartQuantity += delta
		}
		if item.CartQuantity > 0 {
			kept = append(kept, item)
		}
	}
	cs.carts[customerID] = kept
	return cloneCart(kept)
}

// Get returns a copy of the customer's cart.
func (cs *CartService) Get(customerID string) []models.CartItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cloneCart(cs.carts[customerID])
}

// Clear empties the customer's cart.
func (cs *CartService) Clear(customerID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.carts, customerID)
}

func cloneCart(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}
