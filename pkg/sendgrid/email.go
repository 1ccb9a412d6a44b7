package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email is a single outbound message. HTMLContent is optional.
type Email struct {
	To           string
	CC           []string
	BCC          []string
	Subject      string
	PlainContent string
	HTMLContent  string
}

type EmailService interface {
	Send(ctx context.Context, email *Email) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) Send(ctx context.Context, email *Email) error {
	if email == nil || email.To == "" {
		return errors.New("email recipient is required")
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", email.To))

	for _, cc := range email.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}

	for _, bcc := range email.BCC {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}

	personalization.Subject = email.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", email.PlainContent))

	if email.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", email.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient exposes the underlying client so tests can point it at a fake server.
func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}
