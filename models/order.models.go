package models

import "time"

// OrderStatus is the state of an order. The forward path is
// pending -> preparing -> delivering -> completed, with cancelled reachable
// at any point, but no transition is enforced: the administrator may set
// any status at any time.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// KnownOrderStatuses lists every valid OrderStatus for boundary validation.
var KnownOrderStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusDelivering, StatusCompleted, StatusCancelled}

// PaymentMethod is how the customer pays on delivery.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card_on_delivery"
)

// KnownPaymentMethods lists every valid PaymentMethod.
var KnownPaymentMethods = []PaymentMethod{PaymentPix, PaymentCash, PaymentCard}

// RecurrenceType is a label for how often the customer wants the order
// repeated. Nothing schedules recurrences; the label just rides along so
// the administrator can see it.
type RecurrenceType string

const (
	RecurrenceNone     RecurrenceType = "one_time"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceBiweekly RecurrenceType = "biweekly"
	RecurrenceMonthly  RecurrenceType = "monthly"
)

// KnownRecurrenceTypes lists every valid RecurrenceType.
var KnownRecurrenceTypes = []RecurrenceType{RecurrenceNone, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly}

// DeliveryPeriod is the requested delivery window.
type DeliveryPeriod string

const (
	PeriodMorning   DeliveryPeriod = "morning"   // 08:00 - 12:00
	PeriodAfternoon DeliveryPeriod = "afternoon" // 13:00 - 18:00
)

// KnownDeliveryPeriods lists every valid DeliveryPeriod.
var KnownDeliveryPeriods = []DeliveryPeriod{PeriodMorning, PeriodAfternoon}

// Order represents a placed order. Customer name, phone and address are
// copied from the customer at checkout time and are not kept in sync with
// later profile edits.
type Order struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customer_id"`
	CustomerName   string         `json:"customer_name"`
	CustomerPhone  string         `json:"customer_phone"`
	Items          []CartItem     `json:"items"`
	Total          float64        `json:"total"`
	DeliveryFee    float64        `json:"delivery_fee"`
	Address        Address        `json:"address"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	ChangeFor      string         `json:"change_for,omitempty"` // only meaningful for cash payments
	Recurrence     RecurrenceType `json:"recurrence"`
	DeliveryPeriod DeliveryPeriod `json:"delivery_period"`
}
