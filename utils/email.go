// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"eggshop/models"
	"eggshop/storage"
)

// EmailService sends order notifications using SendGrid. When no API key
// is configured the service stays disabled and every notification is a
// logged no-op, so a local setup works without an account.
type EmailService struct {
	apiKey     string
	sender     string
	adminEmail string
	store      *storage.Store
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService(store *storage.Store) *EmailService {
	return &EmailService{
		apiKey:     os.Getenv("SENDGRID_API_KEY"),
		sender:     os.Getenv("EMAIL_SENDER"),
		adminEmail: os.Getenv("ADMIN_EMAIL"),
		store:      store,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toName, toEmail, subject, content string) error {
	if es.apiKey == "" || toEmail == "" {
		log.Printf("email disabled, skipping %q to %s", subject, toEmail)
		return nil
	}
	from := mail.NewEmail("Egg Shop", es.sender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)
	client := sendgrid.NewSendClient(es.apiKey)
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NotifyOrderPlaced tells the administrator a new order arrived. Failures
// are logged, never propagated: notifications must not fail an order.
func (es *EmailService) NotifyOrderPlaced(order models.Order) {
	subject := fmt.Sprintf("New order #%s", order.ID)
	content := fmt.Sprintf(
		"%s (%s) placed an order for %.2f (%d items, %s delivery, paying by %s).",
		order.CustomerName, order.CustomerPhone, order.Total,
		len(order.Items), order.DeliveryPeriod, order.PaymentMethod,
	)
	if err := es.SendEmail("Administrator", es.adminEmail, subject, content); err != nil {
		log.Printf("Failed to notify admin about order %s: %v", order.ID, err)
	}

	// Customers who left an email get a confirmation too.
	customer, ok := es.store.GetCustomerByPhone(order.CustomerPhone)
	if !ok || customer.Email == "" {
		return
	}
	confirmation := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order #%s! Total: %.2f (including %.2f delivery). We will deliver in the %s window.",
		customer.Name, order.ID, order.Total, order.DeliveryFee, order.DeliveryPeriod,
	)
	if err := es.SendEmail(customer.Name, customer.Email, fmt.Sprintf("Order #%s confirmed", order.ID), confirmation); err != nil {
		log.Printf("Failed to send email to %s: %v", customer.Email, err)
	}
}

// NotifyStatusChange emails the customer about a status update when their
// record carries an email address.
func (es *EmailService) NotifyStatusChange(order models.Order) {
	customer, ok := es.store.GetCustomerByPhone(order.CustomerPhone)
	if !ok || customer.Email == "" {
		return
	}
	subject := fmt.Sprintf("Order #%s update", order.ID)
	content := fmt.Sprintf(
		"Dear %s,\n\nYour order #%s is now %q.\n\nThank you for shopping with us!",
		customer.Name, order.ID, order.Status,
	)
	if err := es.SendEmail(customer.Name, customer.Email, subject, content); err != nil {
		log.Printf("Failed to send email to %s: %v", customer.Email, err)
	}
}
