// Package web holds the server-rendered views and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tipulim/directory-web/internal/api/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// SessionView is the part of the session every page may show.
type SessionView struct {
	LoggedIn bool
	UserID   string
}

// View is the value every template executes against.
type View struct {
	Session SessionView
	Data    any
}

// Renderer implements echo.Renderer over the embedded templates. Each page is
// parsed together with the layout so pages can share block names.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template.
func NewRenderer() (*Renderer, error) {
	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".html")
		if name == "layout" {
			continue
		}
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", entry)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	sess := middleware.SessionFrom(c)
	view := View{
		Session: SessionView{LoggedIn: sess.IsLoggedIn(), UserID: sess.UserID().String()},
		Data:    data,
	}
	return tmpl.ExecuteTemplate(w, "layout", view)
}
