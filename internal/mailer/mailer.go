package mailer

import (
	"github.com/pkg/errors"
	"github.com/techvault/storefront/config"
	"gopkg.in/gomail.v2"
)

// Sender delivers a rendered message. Production uses SMTP via gomail;
// tests substitute a fake.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SmtpSender sends mail through the configured SMTP relay.
type SmtpSender struct {
	cfg config.SmtpConfig
}

func NewSmtpSender(cfg config.SmtpConfig) *SmtpSender {
	return &SmtpSender{cfg: cfg}
}

func (s *SmtpSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, s.cfg.Sender))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return errors.Wrap(err, "smtp send failed")
	}
	return nil
}

// Notifier renders and sends checkout notification emails.
type Notifier struct {
	sender Sender
}

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Notify sends a single confirmation or decline email for the record.
// Delivery is best effort; the caller decides whether to observe the error.
func (n *Notifier) Notify(rec OrderRecord) error {
	subject, body, err := RenderOrderEmail(rec)
	if err != nil {
		return errors.Wrap(err, "render order email")
	}
	return n.sender.Send(rec.Customer.Email, subject, body)
}
