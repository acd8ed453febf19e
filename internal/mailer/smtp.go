package mailer

import (
	"errors"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"
)

type SMTPClient struct {
	fromEmail string
	dialer    *gomail.Dialer
	backoff   time.Duration
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) (*SMTPClient, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}
	if fromEmail == "" {
		return nil, errors.New("from email is required")
	}

	d := gomail.NewDialer(host, port, username, password)
	d.Timeout = 10 * time.Second

	return &SMTPClient{
		fromEmail: fromEmail,
		dialer:    d,
		backoff:   time.Second,
	}, nil
}

func (m *SMTPClient) Send(templateFile, username, email string, data any) error {
	subject, body, err := Render(templateFile, data)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.fromEmail, FromName)
	message.SetAddressHeader("To", email, username)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	var retryErr error
	for i := 0; i < maxRetires; i++ {
		retryErr = m.dialer.DialAndSend(message)
		if retryErr == nil {
			return nil
		}

		// linear backoff
		time.Sleep(m.backoff * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send email after %d attempts, error: %v", maxRetires, retryErr)
}

// NoopClient drops every message. Used when SMTP is not configured.
type NoopClient struct{}

func (NoopClient) Send(templateFile, username, email string, data any) error {
	_, _, err := Render(templateFile, data)
	return err
}
