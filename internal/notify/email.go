package notify

import (
	"context"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewEmailSender builds an SMTP sender. The "to" address is the default
// destination for shop notifications; SendTo overrides it per message.
func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		to:     to,
	}
}

func (s *EmailSender) Send(ctx context.Context, subject, message string) error {
	return s.SendTo(ctx, s.to, subject, message)
}

func (s *EmailSender) SendTo(_ context.Context, recipient, subject, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)

	return s.dialer.DialAndSend(m)
}
