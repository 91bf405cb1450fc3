package services

import (
	"path/filepath"
	"testing"

	"eggshop/models"
	"eggshop/storage"
)

func newTestCustomerService(t *testing.T) (*storage.Store, *CustomerService) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, NewCustomerService(store)
}

func TestFindOrCreateCustomerCreates(t *testing.T) {
	store, svc := newTestCustomerService(t)

	customer, err := svc.FindOrCreateCustomer("19999999999", "Maria Silva")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if customer.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if customer.TotalOrders != 0 || customer.Address != nil {
		t.Fatalf("new customer should start empty, got %+v", customer)
	}

	// The record is persisted, not just returned.
	stored, ok := store.GetCustomerByPhone("19999999999")
	if !ok || stored.ID != customer.ID {
		t.Fatalf("customer not persisted: %+v", stored)
	}
}

func TestFindOrCreateCustomerReturnsExisting(t *testing.T) {
	store, svc := newTestCustomerService(t)

	existing := models.Customer{ID: "c1", Name: "Maria", Phone: "123", TotalOrders: 7}
	if err := store.SaveCustomer(existing); err != nil {
		t.Fatalf("save customer: %v", err)
	}

	// A later login with a different name must not reset the record.
	got, err := svc.FindOrCreateCustomer("123", "Someone Else")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if got.ID != "c1" || got.Name != "Maria" || got.TotalOrders != 7 {
		t.Fatalf("expected the stored record untouched, got %+v", got)
	}
	if n := len(store.GetCustomers()); n != 1 {
		t.Fatalf("expected 1 customer, got %d", n)
	}
}
