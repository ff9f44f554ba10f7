package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vershina/sportclub/internal/services"
	"go.uber.org/zap"
)

const thankYouPath = "/thank-you.html"

type contactSender interface {
	SendContact(ctx context.Context, msg services.ContactMessage) error
}

// ContactHandler accepts the two public forms. Both always end on the thank
// you page; delivery problems are only logged.
type ContactHandler struct {
	mail   contactSender
	logger *zap.Logger
}

func NewContactHandler(mail contactSender, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{mail: mail, logger: logger}
}

// SubmitLead records a call-back request from the sign-up form.
func (h *ContactHandler) SubmitLead(c *fiber.Ctx) error {
	h.logger.Info("lead received",
		zap.String("name", strings.TrimSpace(c.FormValue("userName"))),
		zap.String("phone", strings.TrimSpace(c.FormValue("userPhone"))))
	return c.Redirect(thankYouPath, fiber.StatusSeeOther)
}

func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	msg := services.ContactMessage{
		Name:    strings.TrimSpace(c.FormValue("contact_name")),
		Email:   strings.TrimSpace(c.FormValue("contact_email")),
		Subject: strings.TrimSpace(c.FormValue("contact_subject")),
		Message: c.FormValue("contact_message"),
	}

	err := h.mail.SendContact(c.Context(), msg)
	switch {
	case err == nil:
		h.logger.Info("contact mail sent", zap.String("email", msg.Email))
	case errors.Is(err, services.ErrMailNotConfigured):
		h.logger.Info("contact mail skipped, smtp is not configured")
	default:
		h.logger.Warn("contact mail failed", zap.String("email", msg.Email), zap.Error(err))
	}

	return c.Redirect(thankYouPath, fiber.StatusSeeOther)
}
