package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"eggshop/models"
	"eggshop/storage"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the
// cart.
var ErrEmptyCart = errors.New("cart is empty")

// Notifier receives best-effort order notifications. Failures are the
// notifier's problem; the lifecycle never blocks or rolls back on them.
type Notifier interface {
	NotifyOrderPlaced(order models.Order)
	NotifyStatusChange(order models.Order)
}

// CheckoutInput carries the checkout selections made by the customer.
type CheckoutInput struct {
	Address        models.Address
	PaymentMethod  models.PaymentMethod
	ChangeFor      string
	Recurrence     models.RecurrenceType
	DeliveryPeriod models.DeliveryPeriod
}

// OrderService turns carts into persisted orders and applies status
// transitions.
type OrderService struct {
	Store       *storage.Store
	Carts       *CartService
	Notifier    Notifier
	DeliveryFee float64

	nowFunc func() time.Time
}

// NewOrderService creates a new OrderService. notifier may be nil.
func NewOrderService(store *storage.Store, carts *CartService, notifier Notifier, deliveryFee float64) *OrderService {
	return &OrderService{
		Store:       store,
		Carts:       carts,
		Notifier:    notifier,
		DeliveryFee: deliveryFee,
		nowFunc:     time.Now,
	}
}

// PlaceOrder creates an order from the customer's current cart and the
// checkout selections, persists it, bumps the customer record, refreshes
// the session slot and clears the cart.
//
// The order save and the customer save are two independent writes with no
// rollback: if the second fails the two records diverge. That window is a
// documented property of the best-effort store, not something this method
// papers over.
func (svc *OrderService) PlaceOrder(customer models.Customer, input CheckoutInput) (models.Order, error) {
	cart := svc.Carts.Get(customer.ID)
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentCash
	}
	if input.Recurrence == "" {
		input.Recurrence = models.RecurrenceNone
	}
	if input.DeliveryPeriod == "" {
		input.DeliveryPeriod = models.PeriodMorning
	}

	var subtotal float64
	for _, item := range cart {
		subtotal += item.Price * float64(item.CartQuantity)
	}

	now := svc.nowFunc()
	order := models.Order{
		ID:             uuid.NewString(),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerPhone:  customer.Phone,
		Items:          cart,
		Total:          subtotal + svc.DeliveryFee,
		DeliveryFee:    svc.DeliveryFee,
		Address:        input.Address,
		Status:         models.StatusPending,
		CreatedAt:      now,
		PaymentMethod:  input.PaymentMethod,
		ChangeFor:      input.ChangeFor,
		Recurrence:     input.Recurrence,
		DeliveryPeriod: input.DeliveryPeriod,
	}

	if err := svc.Store.SaveOrder(order); err != nil {
		return models.Order{}, err
	}

	customer.Address = &input.Address
	customer.TotalOrders++
	customer.LastOrderDate = &now
	if err := svc.Store.SaveCustomer(customer); err != nil {
		log.Printf("order %s saved but customer %s update failed: %v", order.ID, customer.Phone, err)
	}
	if err := svc.Store.SetSession(models.CustomerSession(customer)); err != nil {
		log.Printf("session refresh after order %s failed: %v", order.ID, err)
	}

	svc.Carts.Clear(customer.ID)

	if svc.Notifier != nil {
		svc.Notifier.NotifyOrderPlaced(order)
	}
	return order, nil
}

// SetOrderStatus sets an order to any known status. No transition table is
// enforced: every status is selectable regardless of the current one, and
// setting the already-current status is a harmless no-op. The boolean
// reports whether the order exists.
func (svc *OrderService) SetOrderStatus(orderID string, status models.OrderStatus) (models.Order, bool, error) {
	for _, order := range svc.Store.GetOrders() {
		if order.ID != orderID {
			continue
		}
		if order.Status == status {
			return order, true, nil
		}
		order.Status = status
		if err := svc.Store.SaveOrder(order); err != nil {
			return models.Order{}, true, err
		}
		if svc.Notifier != nil {
			svc.Notifier.NotifyStatusChange(order)
		}
		return order, true, nil
	}
	return models.Order{}, false, nil
}

// ListOrders returns every order, newest first.
func (svc *OrderService) ListOrders() []models.Order {
	return svc.Store.GetOrders()
}

// CustomerOrders returns the orders placed by one customer, newest first.
func (svc *OrderService) CustomerOrders(customerID string) []models.Order {
	var out []models.Order
	for _, order := range svc.Store.GetOrders() {
		if order.CustomerID == customerID {
			out = append(out, order)
		}
	}
	return out
}
