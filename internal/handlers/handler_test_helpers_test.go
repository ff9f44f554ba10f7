package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// recordingViews stands in for the html engine and remembers the last render.
type recordingViews struct {
	name   string
	layout string
	data   fiber.Map
}

func (v *recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, binding interface{}, layouts ...string) error {
	v.name = name
	v.layout = ""
	if len(layouts) > 0 {
		v.layout = layouts[0]
	}
	v.data, _ = binding.(fiber.Map)
	_, err := io.WriteString(w, name)
	return err
}

func newTestApp(views *recordingViews) *fiber.App {
	return fiber.New(fiber.Config{
		Views:        views,
		ErrorHandler: ErrorHandler(zap.NewNop()),
	})
}

func postForm(t *testing.T, app *fiber.App, target string, values url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}
