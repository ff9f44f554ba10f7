package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vershina/sportclub/internal/config"
	"github.com/wneessen/go-mail"
)

type stubMailSender struct {
	sent []*mail.Msg
	err  error
}

func (s *stubMailSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	s.sent = append(s.sent, messages...)
	return s.err
}

func TestMailServiceWithoutSMTPSettingsIsNotConfigured(t *testing.T) {
	service, err := NewMailService(&config.Config{SMTPServer: "smtp.gmail.com", SMTPPort: 587})
	require.NoError(t, err)

	assert.False(t, service.Configured())
	err = service.SendContact(context.Background(), ContactMessage{Name: "a", Message: "b"})
	assert.ErrorIs(t, err, ErrMailNotConfigured)
}

func TestMailServiceSendsContactMessage(t *testing.T) {
	sender := &stubMailSender{}
	service := newMailService("club@example.com", "owner@example.com", sender)

	err := service.SendContact(context.Background(), ContactMessage{
		Name:    "Ольга",
		Email:   "olga@example.com",
		Message: "<b>Здравствуйте</b>",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"Сообщение с сайта: Без темы"}, msg.GetGenHeader(mail.HeaderSubject))
	assert.Equal(t, []string{"<olga@example.com>"}, msg.GetGenHeader(mail.HeaderReplyTo))
	assert.Equal(t, []string{"<owner@example.com>"}, msg.GetToString())
}

func TestMailServiceWrapsSendFailure(t *testing.T) {
	sender := &stubMailSender{err: errors.New("connection refused")}
	service := newMailService("club@example.com", "owner@example.com", sender)

	err := service.SendContact(context.Background(), ContactMessage{Name: "a", Email: "not an address", Subject: "Вопрос", Message: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	require.Len(t, sender.sent, 1)
	assert.Empty(t, sender.sent[0].GetGenHeader(mail.HeaderReplyTo))
}
