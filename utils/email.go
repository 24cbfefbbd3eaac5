// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"

	"confetti-orders/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes a new EmailService. It returns nil when no
// API token is configured; the shipping email field is optional, so the
// service cannot be a hard dependency.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, textContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		TextBody: textContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends payment instructions for a new order
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation - Confetti Order"
	content := fmt.Sprintf(
		"Your order %s has been created.\n\nSend exactly %v USDC on Base to:\n%s\n\nOnce payment confirms, your order will process automatically. Keep this Order ID for support.\n",
		order.ID,
		order.Price,
		order.Receiver,
	)

	return es.SendEmail(toEmail, subject, content)
}
