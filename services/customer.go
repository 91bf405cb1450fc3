package services

import (
	"github.com/google/uuid"

	"eggshop/models"
	"eggshop/storage"
)

// CustomerService handles customer identification at login.
type CustomerService struct {
	Store *storage.Store
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(store *storage.Store) *CustomerService {
	return &CustomerService{Store: store}
}

// FindOrCreateCustomer resolves a customer by phone number. An existing
// record wins as-is; otherwise a fresh customer is created with a new id,
// zero orders and no address, and persisted. This runs once per login,
// not per order.
func (cs *CustomerService) FindOrCreateCustomer(phone, name string) (models.Customer, error) {
	if existing, ok := cs.Store.GetCustomerByPhone(phone); ok {
		return existing, nil
	}
	customer := models.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
	}
	if err := cs.Store.SaveCustomer(customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}
