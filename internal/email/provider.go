package email

import "fmt"

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Provider is the outbound-mail port the services depend on. The account
// lifecycle treats sends as best-effort side effects: state is persisted
// first, a failed send is logged and never rolls anything back.
type Provider interface {
	Send(msg *Message) error
	SendVerification(to, name, verifyURL string) error
	SendPasswordReset(to, resetURL string) error
}

// Config holds SMTP transport settings.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
