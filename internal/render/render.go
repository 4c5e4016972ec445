package render

import (
	"bytes"
	"embed"
	"text/template"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Template names
const (
	TemplateDamageResults = "damage-results"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders chat content from named templates
type Renderer interface {
	Render(name string, data any) (string, error)
}

type templateRenderer struct {
	tmpl *template.Template
}

// New parses the embedded templates. Template names drop the .tmpl suffix.
func New() (Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to parse templates")
	}
	return &templateRenderer{tmpl: tmpl}, nil
}

// MustNew is New for package initialisation
func MustNew() Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *templateRenderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name + ".tmpl")
	if t == nil {
		return "", dnderr.NotFoundf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", dnderr.Wrapf(err, "failed to render %s", name)
	}
	return buf.String(), nil
}

// DamageResult is one damage type line in a damage card
type DamageResult struct {
	Type    string
	Formula string
	Total   int
}

// DamageResults is the data for the damage-results template
type DamageResults struct {
	Results       []DamageResult
	ImageOverride string
}
