package validation

import "testing"

func TestCheckoutRequest_Valid(t *testing.T) {
	v := New()

	req := CheckoutRequest{
		Address:        AddressRequest{Street: "Main Ave", Number: "123", City: "Springfield"},
		PaymentMethod:  "cash",
		ChangeFor:      "50.00",
		Recurrence:     "weekly",
		DeliveryPeriod: "morning",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCheckoutRequest_MissingAddress(t *testing.T) {
	v := New()

	req := CheckoutRequest{
		Address:       AddressRequest{Street: "Main Ave"}, // number missing
		PaymentMethod: "pix",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing address number, got nil")
	}
}

func TestCheckoutRequest_ChangeForRequiresCash(t *testing.T) {
	v := New()

	req := CheckoutRequest{
		Address:       AddressRequest{Street: "Main Ave", Number: "123"},
		PaymentMethod: "pix",
		ChangeFor:     "50.00",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for change_for without cash, got nil")
	}
}

func TestCheckoutRequest_UnknownPeriod(t *testing.T) {
	v := New()

	req := CheckoutRequest{
		Address:        AddressRequest{Street: "Main Ave", Number: "123"},
		DeliveryPeriod: "midnight",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown delivery period, got nil")
	}
}

func TestStatusUpdateRequest(t *testing.T) {
	v := New()

	if err := v.Struct(StatusUpdateRequest{Status: "delivering"}); err != nil {
		t.Fatalf("expected valid status, got error: %v", err)
	}
	if err := v.Struct(StatusUpdateRequest{Status: "teleported"}); err == nil {
		t.Fatal("expected validation error for unknown status, got nil")
	}
}

func TestProductRequest(t *testing.T) {
	v := New()

	valid := ProductRequest{Name: "Quail Eggs", Type: "quail", QuantityPerPackage: 24, Price: 15.0, Active: true}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid product, got error: %v", err)
	}

	if err := v.Struct(ProductRequest{Name: "Bad", Type: "ostrich", QuantityPerPackage: 10}); err == nil {
		t.Fatal("expected validation error for unknown product type, got nil")
	}
	if err := v.Struct(ProductRequest{Name: "Bad", Type: "white", QuantityPerPackage: 0}); err == nil {
		t.Fatal("expected validation error for zero package quantity, got nil")
	}
}

func TestCustomerLoginRequest(t *testing.T) {
	v := New()

	if err := v.Struct(CustomerLoginRequest{Name: "Maria", Phone: "19999999999"}); err != nil {
		t.Fatalf("expected valid login, got error: %v", err)
	}
	if err := v.Struct(CustomerLoginRequest{Name: "Maria"}); err == nil {
		t.Fatal("expected validation error for missing phone, got nil")
	}
	if err := v.Struct(CustomerLoginRequest{Name: "Maria", Phone: "1", Email: "not-an-email"}); err == nil {
		t.Fatal("expected validation error for bad email, got nil")
	}
}
