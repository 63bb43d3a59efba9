package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"portfolio/internal/content"
	"portfolio/internal/core"
	"portfolio/internal/session"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	PageIndex = "index.html"
	PageLogin = "login.html"
	PageAdmin = "admin.html"
)

// TimestampLayout is how message times are shown, in pages and JSON alike.
const TimestampLayout = "2006-01-02 15:04:05"

type IndexPage struct {
	Portfolio content.Portfolio
	Flashes   []session.Flash
	LoggedIn  bool
}

type LoginPage struct {
	Flashes  []session.Flash
	Username string
}

type AdminPage struct {
	Username string
	Messages []core.MessageRecord
	Flashes  []session.Flash
}

var funcs = template.FuncMap{
	"timestamp": func(t time.Time) string {
		return t.Format(TimestampLayout)
	},
}

// Renderer executes the embedded page templates. Templates are parsed once;
// a Renderer is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, page := range []string{PageIndex, PageLogin, PageAdmin} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}

// Static serves the embedded assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
