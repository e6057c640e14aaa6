package service

import (
	"context"
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/domain"
)

// sendGridEmailService delivers inquiry notifications to the agency mailbox.
type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	agencyTo  string
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		agencyTo:  cfg.AgencyTo,
	}
}

func (s *sendGridEmailService) SendInquiryNotification(ctx context.Context, inquiry *domain.Inquiry) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", s.agencyTo)

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	if inquiry.Subject != "" {
		subject = fmt.Sprintf("New inquiry: %s", inquiry.Subject)
	}

	plainText := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s",
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message)
	htmlContent := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;<br><strong>Phone:</strong> %s</p><p>%s</p>",
		html.EscapeString(inquiry.Name), html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Phone), html.EscapeString(inquiry.Message))

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send inquiry notification: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
