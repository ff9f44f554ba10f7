package utils

import (
	"net/url"
	"strings"
	"unicode"
)

// WhatsAppLink builds a wa.me link with a prefilled message. Anything but
// digits is stripped from phone, so "+7 707 123-45-67" works.
func WhatsAppLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return "#"
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}
