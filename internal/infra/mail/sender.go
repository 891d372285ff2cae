package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewSender(host string, port int, user, password, from, templateDir string) *Sender {
	return &Sender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		TemplateDir: templateDir,
	}
}

// Send resolves the body template for (TemplateID, Locale), substitutes the
// params and delivers the message over SMTP.
func (s *Sender) Send(n Notification) error {
	body, err := s.buildBody(n)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", fmt.Sprintf("Aviso: error en el alta de ticket (plantilla %d)", n.TemplateID))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar email SMTP: %w", err)
	}

	return nil
}

func (s *Sender) buildBody(n Notification) (string, error) {
	tmplPath := filepath.Join(s.TemplateDir, fmt.Sprintf("notificacion_%d_%s.html", n.TemplateID, n.Locale))
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("error al leer plantilla de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, struct{ Params []string }{n.Params}); err != nil {
		return "", fmt.Errorf("error al procesar plantilla de email: %w", err)
	}

	return body.String(), nil
}
