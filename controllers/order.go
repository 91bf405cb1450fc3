// controllers/order.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"eggshop/middleware"
	"eggshop/models"
	"eggshop/services"
	"eggshop/storage"
	"eggshop/validation"
)

// OrderController handles order-related requests
type OrderController struct {
	Store    *storage.Store
	Orders   *services.OrderService
	Validate *validatorv10.Validate
}

// NewOrderController creates a new OrderController
func NewOrderController(store *storage.Store, orders *services.OrderService, v *validatorv10.Validate) *OrderController {
	return &OrderController{Store: store, Orders: orders, Validate: v}
}

// CreateOrder places an order from the customer's current cart and the
// checkout selections.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Role != string(models.RoleCustomer) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	customer, found := oc.Store.GetCustomerByPhone(claims.Phone)
	if !found {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	var req validation.CheckoutRequest
	if err := validation.BindAndValidate(w, r, &req, oc.Validate); err != nil {
		return
	}

	input := services.CheckoutInput{
		Address: models.Address{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			ZipCode:      req.Address.ZipCode,
			Reference:    req.Address.Reference,
			Lat:          req.Address.Lat,
			Lng:          req.Address.Lng,
		},
		PaymentMethod:  models.PaymentMethod(req.PaymentMethod),
		ChangeFor:      req.ChangeFor,
		Recurrence:     models.RecurrenceType(req.Recurrence),
		DeliveryPeriod: models.DeliveryPeriod(req.DeliveryPeriod),
	}

	order, err := oc.Orders.PlaceOrder(customer, input)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			http.Error(w, "Cart is empty", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetOrders retrieves orders, newest first. Admins see everything;
// customers see only their own.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var orders []models.Order
	if claims.Role == string(models.RoleAdmin) {
		orders = oc.Orders.ListOrders()
	} else {
		customer, found := oc.Store.GetCustomerByPhone(claims.Phone)
		if !found {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		orders = oc.Orders.CustomerOrders(customer.ID)
	}
	if orders == nil {
		orders = []models.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus sets an order to any known status (Admin only). There
// is no transition table: every status is selectable regardless of the
// current one.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req validation.StatusUpdateRequest
	if err := validation.BindAndValidate(w, r, &req, oc.Validate); err != nil {
		return
	}

	order, found, err := oc.Orders.SetOrderStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// AdminSummary reports today's order count and sales total plus the
// orders still waiting to go out (Admin only).
func (oc *OrderController) AdminSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	var todayCount int
	var todaySales float64
	pending := []models.Order{}

	for _, order := range oc.Orders.ListOrders() {
		created := order.CreatedAt
		if created.Year() == now.Year() && created.YearDay() == now.YearDay() {
			todayCount++
			todaySales += order.Total
		}
		if order.Status == models.StatusPending || order.Status == models.StatusPreparing {
			pending = append(pending, order)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orders_today":   todayCount,
		"sales_today":    todaySales,
		"pending_orders": pending,
	})
}
