package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "admin_flash"

// Flash cookies carry a short code, never user input. The text shown for a
// code lives here.
var flashMessages = map[string]string{
	"coach-created":   "Тренер добавлен.",
	"coach-updated":   "Данные тренера обновлены.",
	"coach-deleted":   "Тренер удалён.",
	"service-created": "Услуга добавлена.",
	"service-updated": "Услуга обновлена.",
	"service-deleted": "Услуга удалена.",
	"news-created":    "Новость опубликована.",
	"news-updated":    "Новость обновлена.",
	"news-deleted":    "Новость удалена.",
	"course-created":  "Курс добавлен.",
	"course-updated":  "Курс обновлён.",
	"course-deleted":  "Курс удалён.",
}

func setFlash(c *fiber.Ctx, code string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    code,
		Path:     "/admin",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func popFlash(c *fiber.Ctx) string {
	code := c.Cookies(flashCookie)
	if code == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Path:     "/admin",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return flashMessages[code]
}

// redirectWithFlash answers a successful admin form post.
func redirectWithFlash(c *fiber.Ctx, location, code string) error {
	setFlash(c, code)
	return c.Redirect(location, fiber.StatusSeeOther)
}
