// Package templates holds the page set used by gin to render HTML. Every page is parsed
// together with a shared layout so pages can define the same blocks without colliding.
package templates

import (
	"fmt"
	"github.com/gin-gonic/gin/render"
	"html/template"
	"io/fs"
	"sync/atomic"
)

// Renderer implements gin's render.HTMLRender over a set that can be swapped at runtime
type Renderer struct {
	layout string
	funcs  template.FuncMap
	set    atomic.Pointer[map[string]*template.Template]
}

// New returns an empty Renderer. Load must be called before the first request.
func New(layout string, funcs template.FuncMap) *Renderer {
	r := &Renderer{layout: layout, funcs: funcs}
	r.set.Store(&map[string]*template.Template{})
	return r
}

// Load parses every *.html page in fsys with the layout and replaces the current set.
// On error the current set is left untouched.
func (r *Renderer) Load(fsys fs.FS) error {
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}

	set := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		if p == r.layout {
			continue
		}
		t, err := template.New(r.layout).Funcs(r.funcs).ParseFS(fsys, r.layout, p)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", p, err)
		}
		set[p] = t
	}
	if len(set) == 0 {
		return fmt.Errorf("no templates found besides layout %s", r.layout)
	}

	r.set.Store(&set)
	return nil
}

// Names returns the loaded page names
func (r *Renderer) Names() []string {
	set := *r.set.Load()
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	return names
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	set := *r.set.Load()
	t, ok := set[name]
	if !ok {
		t = template.Must(template.New(r.layout).Parse(`template ` + template.HTMLEscapeString(name) + ` not found`))
	}
	return render.HTML{Template: t, Name: r.layout, Data: data}
}
