// Package web embeds the wiki pages and their static assets.
package web

import (
	"embed"
	"github.com/ribgsilva/encyclopedia/platform/web/templates"
	"html/template"
	"io/fs"
	"net/url"
)

// Layout wraps every page
const Layout = "layout.html"

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates is the embedded page set
var Templates = mustSub(templatesFS, "templates")

// Static is the embedded asset directory served under /static
var Static = mustSub(staticFS, "static")

// Funcs are available to every page
var Funcs = template.FuncMap{
	"pathEscape":  url.PathEscape,
	"queryEscape": url.QueryEscape,
}

// Renderer returns a renderer loaded with the embedded pages
func Renderer() (*templates.Renderer, error) {
	r := templates.New(Layout, Funcs)
	if err := r.Load(Templates); err != nil {
		return nil, err
	}
	return r, nil
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("failed to open embedded " + dir + ": " + err.Error())
	}
	return sub
}
