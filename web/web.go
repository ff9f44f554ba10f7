// Package web embeds the page templates and front-end assets.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views assets
var files embed.FS

// Site holds the values every public page needs.
type Site struct {
	WhatsAppPhone string
	WhatsAppText  string
}

// NewViews returns the template engine for fiber.Config.Views.
func NewViews(site Site) (*html.Engine, error) {
	views, err := fs.Sub(files, "views")
	if err != nil {
		return nil, fmt.Errorf("open views: %w", err)
	}

	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFuncMap(templateFuncs(site))
	return engine, nil
}

// Assets serves the embedded css and js.
func Assets() (http.FileSystem, error) {
	assets, err := fs.Sub(files, "assets")
	if err != nil {
		return nil, fmt.Errorf("open assets: %w", err)
	}
	return http.FS(assets), nil
}
