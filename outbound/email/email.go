package email

import (
	"fmt"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

//go:generate mockgen -destination=mocks/sender.go -package=mocks kerala-tours/outbound/email Sender

// Sender delivers a plain text email.
type Sender interface {
	Send(to []string, subject string, body string) error
}

type EmailOutbound struct {
	Cfg    *viper.Viper
	dialer *gomail.Dialer
	from   string
}

func (out *EmailOutbound) Init() {
	out.from = out.Cfg.GetString("email.from")
	if out.from == "" {
		out.from = out.Cfg.GetString("email.user")
	}

	out.dialer = gomail.NewDialer(
		out.Cfg.GetString("email.host"),
		out.Cfg.GetInt("email.port"),
		out.Cfg.GetString("email.user"),
		out.Cfg.GetString("email.password"),
	)
}

func (out *EmailOutbound) Send(to []string, subject string, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("send email %q: no recipient", subject)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", out.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := out.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email %q: %w", subject, err)
	}

	return nil
}
