package mailer

import (
	"fmt"

	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"
)

// SMTPMailer sends transactional mail over SMTP.
type SMTPMailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	domainName string
	logger     *zap.Logger
}

// Config holds SMTP connection settings.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	DomainName string
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg Config, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:       cfg.Host,
		port:       cfg.Port,
		username:   cfg.Username,
		password:   cfg.Password,
		from:       cfg.From,
		domainName: cfg.DomainName,
		logger:     logger,
	}
}

// SendPasswordReset emails a reset link carrying the given token.
func (m *SMTPMailer) SendPasswordReset(email, username, token string) error {
	resetURL := fmt.Sprintf("https://%s/reset-password?token=%s", m.domainName, token)
	body := fmt.Sprintf(
		"Hello %s,\n\nA password reset was requested for your IdeaCreators account.\n"+
			"Open the link below to choose a new password. The link expires in one hour.\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		username, resetURL)

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/plain", body)

	d := mail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send password reset email",
			zap.String("host", m.host), zap.Int("port", m.port), zap.Error(err))
		return err
	}
	m.logger.Info("password reset email sent", zap.String("to", email))
	return nil
}
