package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/crmbase/lead-manager/internal/infra/http/middleware"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendCredentials delivers the registration notification with the new
// account's credentials. Callers treat failures as best-effort.
func (s *EmailSender) SendCredentials(to, name, password string) error {
	data := CredentialEmailData{
		Name:     name,
		Email:    to,
		Password: password,
	}

	t, err := template.New("credentials").Parse(credentialTemplate)
	if err != nil {
		return fmt.Errorf("parse credential template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render credential template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome, %s! Your account is ready", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		middleware.RecordMailError()
		return fmt.Errorf("send credential email: %w", err)
	}

	return nil
}
