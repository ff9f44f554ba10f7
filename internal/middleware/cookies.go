package middleware

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
)

// EncryptedCookies encrypts every cookie the app sets with a key derived from
// the session secret.
func EncryptedCookies(secret string) fiber.Handler {
	sum := sha256.Sum256([]byte(secret))
	return encryptcookie.New(encryptcookie.Config{
		Key: base64.StdEncoding.EncodeToString(sum[:]),
	})
}
