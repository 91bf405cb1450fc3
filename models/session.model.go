package models

// UserRole discriminates who is signed in.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// AdminIdentity is the fixed administrator identity. There is no real
// admin account; the storefront has exactly one operator.
type AdminIdentity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is the currently authenticated actor. It is a tagged variant:
// Role decides which of Customer or Admin is set, and exactly one of them
// is non-nil. A single session is persisted at a time; logging in
// overwrites it and logging out clears it.
type Session struct {
	Role     UserRole       `json:"role"`
	Customer *Customer      `json:"customer,omitempty"`
	Admin    *AdminIdentity `json:"admin,omitempty"`
}

// CustomerSession builds a customer-role session.
func CustomerSession(c Customer) Session {
	return Session{Role: RoleCustomer, Customer: &c}
}

// AdminSession builds an admin-role session.
func AdminSession(a AdminIdentity) Session {
	return Session{Role: RoleAdmin, Admin: &a}
}
