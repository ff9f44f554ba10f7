package web

import (
	"html/template"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/pkg/utils"
)

func templateFuncs(site Site) template.FuncMap {
	return template.FuncMap{
		"mediaURL": mediaURL,
		"waLink": func(text ...string) string {
			message := site.WhatsAppText
			if len(text) > 0 && strings.TrimSpace(text[0]) != "" {
				message = text[0]
			}
			return utils.WhatsAppLink(site.WhatsAppPhone, message)
		},
		"hasWhatsApp": func() bool { return site.WhatsAppPhone != "" },
		"sectionName": sectionName,
		"text":        text,
		"date":        formatDate,
		"price":       formatPrice,
		"excerpt":     excerpt,
		"year":        func() int { return time.Now().Year() },
	}
}

// mediaURL turns a stored image reference into something an <img> can load.
// Cloud references are absolute already; local ones live under /static.
func mediaURL(ref interface{}) string {
	var value string
	switch v := ref.(type) {
	case string:
		value = v
	case *string:
		if v != nil {
			value = *v
		}
	case models.StoredImage:
		value = v.URL
	}

	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return ""
	case (models.StoredImage{URL: value}).IsRemote():
		return value
	default:
		return "/static/" + strings.TrimLeft(value, "/")
	}
}

func sectionName(section interface{}) string {
	switch v := section.(type) {
	case models.Section:
		return v.Label()
	case string:
		return models.Section(v).Label()
	default:
		return ""
	}
}

func text(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

// formatPrice prints whole prices without kopecks and groups thousands with
// a space: 1500 -> "1 500", 99.5 -> "99.50".
func formatPrice(price float64) string {
	formatted := strconv.FormatFloat(price, 'f', 2, 64)
	whole, fraction, _ := strings.Cut(formatted, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	if fraction == "00" {
		return grouped.String()
	}
	return grouped.String() + "." + fraction
}

func excerpt(content string, limit int) string {
	content = strings.Join(strings.Fields(content), " ")
	if utf8.RuneCountInString(content) <= limit {
		return content
	}
	runes := []rune(content)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
