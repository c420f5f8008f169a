package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config Config
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}
	return &SMTPProvider{config: config}, nil
}

func (p *SMTPProvider) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	d := gomail.NewDialer(
		p.config.Host,
		p.config.Port,
		p.config.Username,
		p.config.Password,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, name, verifyURL string) error {
	body, err := RenderVerification(name, verifyURL)
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}
	return p.Send(&Message{
		To:       to,
		Subject:  "Verify your My Task App account",
		HTMLBody: body,
	})
}

func (p *SMTPProvider) SendPasswordReset(to, resetURL string) error {
	body, err := RenderPasswordReset(resetURL)
	if err != nil {
		return fmt.Errorf("failed to render reset template: %w", err)
	}
	return p.Send(&Message{
		To:       to,
		Subject:  "Reset your My Task App password",
		HTMLBody: body,
	})
}
