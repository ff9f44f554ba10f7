package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/vershina/sportclub/internal/config"
	"github.com/wneessen/go-mail"
)

var ErrMailNotConfigured = errors.New("smtp relay is not configured")

const defaultContactSubject = "Без темы"

var contactMailTemplate = template.Must(template.New("contact").Parse(`<html><body>
<h2>Сообщение с сайта</h2>
<p><b>От:</b> {{.Name}} ({{.Email}})</p>
<p><b>Тема:</b> {{.Subject}}</p>
<hr>
<pre style="white-space:pre-wrap;">{{.Message}}</pre>
</body></html>`))

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type MailService struct {
	from   string
	to     string
	sender mailSender
}

// NewMailService returns a service whose SendContact fails with
// ErrMailNotConfigured unless every SMTP setting is present.
func NewMailService(cfg *config.Config) (*MailService, error) {
	if !cfg.MailConfigured() {
		return &MailService{}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.SMTPPort == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.SMTPServer, opts...)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	return newMailService(cfg.SMTPUsername, cfg.EmailTo, client), nil
}

func newMailService(from, to string, sender mailSender) *MailService {
	return &MailService{from: from, to: to, sender: sender}
}

func (s *MailService) Configured() bool {
	return s != nil && s.sender != nil
}

func (s *MailService) SendContact(ctx context.Context, msg ContactMessage) error {
	if !s.Configured() {
		return ErrMailNotConfigured
	}

	message, err := s.buildContactMessage(msg)
	if err != nil {
		return err
	}
	if err := s.sender.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

func (s *MailService) buildContactMessage(msg ContactMessage) (*mail.Msg, error) {
	if strings.TrimSpace(msg.Subject) == "" {
		msg.Subject = defaultContactSubject
	}

	message := mail.NewMsg()
	if err := message.From(s.from); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := message.To(s.to); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	if email := strings.TrimSpace(msg.Email); email != "" {
		// An invalid visitor address only costs the Reply-To header.
		_ = message.ReplyTo(email)
	}
	message.Subject("Сообщение с сайта: " + msg.Subject)
	if err := message.SetBodyHTMLTemplate(contactMailTemplate, msg); err != nil {
		return nil, fmt.Errorf("render contact mail: %w", err)
	}
	return message, nil
}
