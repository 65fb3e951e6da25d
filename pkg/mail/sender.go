package mail

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

var ErrNoRecipients = errors.New("mail has no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

//go:generate mockgen -source=sender.go -destination=mock_sender.go -package=mail

type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Config describes the SMTP account reports are sent from. Username falls back to From.
type Config struct {
	From     string
	Username string
	Password string
	Host     string
	Port     int
}

type sender struct {
	from   string
	dialer Dialer
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)

	switch {
	case textBody != "" && htmlBody != "":
		m.SetBody("text/plain", textBody)
		m.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		m.SetBody("text/html", htmlBody)
	default:
		m.SetBody("text/plain", textBody)
	}

	for _, attachment := range attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(cfg Config) Sender {
	username := cfg.Username
	if username == "" {
		username = cfg.From
	}
	return &sender{
		from:   cfg.From,
		dialer: mail.NewDialer(cfg.Host, cfg.Port, username, cfg.Password),
	}
}
