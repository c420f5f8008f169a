package app

import (
	"taskhub_backend/internal/email"
	"taskhub_backend/internal/logger"
)

// MockEmailProvider is used for local development and tests when no SMTP
// host is configured. It logs instead of sending, so activation and
// reset links still show up somewhere usable.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error {
	logger.Info("[mock email] send", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendVerification(to, name, verifyURL string) error {
	logger.Info("[mock email] verification", "to", to, "url", verifyURL)
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to, resetURL string) error {
	logger.Info("[mock email] password reset", "to", to, "url", resetURL)
	return nil
}
