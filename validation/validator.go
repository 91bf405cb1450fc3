package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with struct-level checks registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// change_for only makes sense when the customer is paying cash.
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})

	return v
}

func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)

	if req.ChangeFor != "" && req.PaymentMethod != "" && req.PaymentMethod != "cash" {
		sl.ReportError(req.ChangeFor, "change_for", "ChangeFor", "change_for_requires_cash", "")
	}
}
