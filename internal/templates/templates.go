package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

//go:embed data/*.json
var files embed.FS

// DefaultLang is used when no or an unsupported language is requested.
const DefaultLang = "pt"

// Message keys.
const (
	KeyUpstreamError = "upstream.generic_error"
	KeyToolNotFound  = "tool.not_found"
	KeyRateLimit     = "limits.rate_limit"
	KeyValidation    = "validation.failed"
	KeyInvalidBody   = "request.invalid_body"
	KeyCanceled      = "request.canceled"
)

// Renderer renders localized messages by key.
type Renderer interface {
	// Render returns a localized message by key.
	Render(key string, data any) (string, error)
}

// Bundle holds parsed templates for a selected language.
type Bundle struct {
	lang      string
	templates map[string]*template.Template
}

// Load loads the message bundle for lang (pt or en).
func Load(lang string) (*Bundle, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "pt", "en":
	default:
		lang = DefaultLang
	}

	raw, err := files.ReadFile(fmt.Sprintf("data/%s.json", lang))
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	var messages map[string]string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	parsed := make(map[string]*template.Template, len(messages))
	for key, value := range messages {
		tmpl, err := template.New(key).Option("missingkey=zero").Parse(value)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", key, err)
		}
		parsed[key] = tmpl
	}

	return &Bundle{lang: lang, templates: parsed}, nil
}

// Lang returns the bundle language.
func (b *Bundle) Lang() string {
	if b == nil {
		return ""
	}
	return b.lang
}

// Render renders a message by key with the supplied data.
func (b *Bundle) Render(key string, data any) (string, error) {
	if b == nil {
		return "", fmt.Errorf("templates bundle is nil")
	}
	tmpl, ok := b.templates[key]
	if !ok {
		return "", fmt.Errorf("template not found: %s", key)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", key, err)
	}
	return out.String(), nil
}

// Message renders key with r, returning fallback when r is nil or fails.
func Message(r Renderer, key string, data any, fallback string) string {
	if r == nil {
		return fallback
	}
	rendered, err := r.Render(key, data)
	if err != nil || strings.TrimSpace(rendered) == "" {
		return fallback
	}
	return rendered
}
