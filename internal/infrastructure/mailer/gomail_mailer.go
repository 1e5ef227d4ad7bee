// Package mailer implementa el correo saliente vía SMTP (gomail).
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/tienda-api/pkg/config"
)

// GomailMailer envía correos por SMTP. Implementa usecase.Mailer.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New construye el mailer. Devuelve nil si SMTP no está configurado
// (el caso de uso trata un mailer nil como envío deshabilitado).
func New(cfg config.SMTPConfig) *GomailMailer {
	if cfg.Host == "" {
		return nil
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &GomailMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// Enviar manda un correo de texto plano.
func (m *GomailMailer) Enviar(para, asunto, cuerpo string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", para)
	msg.SetHeader("Subject", asunto)
	msg.SetBody("text/plain", cuerpo)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", para, err)
	}
	return nil
}
