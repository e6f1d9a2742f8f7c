package cli

import (
	"fmt"

	"github.com/dl/statik/internal/input"
)

const (
	// DefaultBodyTemplate is the page skeleton; substitution points are title and body.
	DefaultBodyTemplate = `<html lang="en"><head><title>%s</title></head><body>%s</body></html>`
	// DefaultLineTemplate is one list entry; substitution points are link target and label.
	DefaultLineTemplate = `<li><a href="%s">%s</a></li>`
)

// Templates are the HTML fragments used to render pages.
type Templates struct {
	Body string
	Line string
}

// DefaultTemplates returns the built-in templates.
func DefaultTemplates() Templates {
	return Templates{
		Body: DefaultBodyTemplate,
		Line: DefaultLineTemplate,
	}
}

// LoadTemplates starts from the defaults and replaces each template whose
// path is set in cfg with the full contents of that file.
func LoadTemplates(cfg Config, r input.Reader) (Templates, error) {
	t := DefaultTemplates()

	var err error
	if cfg.BodyTemplatePath != "" {
		if t.Body, err = loadTemplate(r, cfg.BodyTemplatePath); err != nil {
			return Templates{}, err
		}
	}
	if cfg.LineTemplatePath != "" {
		if t.Line, err = loadTemplate(r, cfg.LineTemplatePath); err != nil {
			return Templates{}, err
		}
	}
	return t, nil
}

func loadTemplate(r input.Reader, path string) (string, error) {
	buf, err := r.Read(path)
	if err != nil {
		return "", fmt.Errorf("load template: %w", err)
	}
	defer buf.Release()
	return buf.String(), nil
}
