package controllers

import (
	"encoding/json"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"eggshop/middleware"
	"eggshop/models"
	"eggshop/services"
	"eggshop/storage"
	"eggshop/utils"
	"eggshop/validation"
)

// SessionController handles login, logout and the persisted session slot
type SessionController struct {
	Store     *storage.Store
	Customers *services.CustomerService
	Validate  *validatorv10.Validate
	AdminName string
}

// NewSessionController creates a new SessionController
func NewSessionController(store *storage.Store, customers *services.CustomerService, v *validatorv10.Validate, adminName string) *SessionController {
	return &SessionController{
		Store:     store,
		Customers: customers,
		Validate:  v,
		AdminName: adminName,
	}
}

// CustomerLogin identifies a customer by phone, creating the record on
// first login, and issues a token. The persisted session slot is
// overwritten with the new session.
func (sc *SessionController) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	var req validation.CustomerLoginRequest
	if err := validation.BindAndValidate(w, r, &req, sc.Validate); err != nil {
		return
	}

	customer, err := sc.Customers.FindOrCreateCustomer(req.Phone, req.Name)
	if err != nil {
		http.Error(w, "Error creating customer", http.StatusInternalServerError)
		return
	}

	// A returning customer may supply an email for order updates.
	if req.Email != "" && customer.Email != req.Email {
		customer.Email = req.Email
		if err := sc.Store.SaveCustomer(customer); err != nil {
			http.Error(w, "Error updating customer", http.StatusInternalServerError)
			return
		}
	}

	if err := sc.Store.SetSession(models.CustomerSession(customer)); err != nil {
		http.Error(w, "Error saving session", http.StatusInternalServerError)
		return
	}

	token, err := utils.GenerateJWT(customer.Phone, customer.Name, string(models.RoleCustomer))
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":    token,
		"customer": customer,
	})
}

// AdminLogin checks the operator name and access code and issues an admin
// token. The name comparison ignores case and accents.
func (sc *SessionController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req validation.AdminLoginRequest
	if err := validation.BindAndValidate(w, r, &req, sc.Validate); err != nil {
		return
	}

	if utils.NormalizeName(req.Name) != utils.NormalizeName(sc.AdminName) || !utils.CheckAdminCode(req.Code) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	admin := models.AdminIdentity{ID: "admin", Name: sc.AdminName}
	if err := sc.Store.SetSession(models.AdminSession(admin)); err != nil {
		http.Error(w, "Error saving session", http.StatusInternalServerError)
		return
	}

	token, err := utils.GenerateJWT("", sc.AdminName, string(models.RoleAdmin))
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"admin": admin,
	})
}

// GetSession returns the persisted session slot.
func (sc *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := sc.Store.GetSession()
	if !ok {
		http.Error(w, "No active session", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// Logout clears the persisted session slot.
func (sc *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ClaimsFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := sc.Store.ClearSession(); err != nil {
		http.Error(w, "Error clearing session", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}
