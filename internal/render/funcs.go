package render

import (
	"os"
	"strings"
	"text/template"
)

// FuncMap returns template helpers for YAML rendering.
func FuncMap(tracker *EnvTracker) template.FuncMap {
	return template.FuncMap{
		"env": func(key string) string {
			value, ok := os.LookupEnv(key)
			if !ok {
				tracker.markMissing(key)
			}
			return value
		},
		"envOr": func(key, def string) string {
			if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
				return value
			}
			return def
		},
		"default": func(def, value string) string {
			if strings.TrimSpace(value) == "" {
				return def
			}
			return value
		},
		"lower":      strings.ToLower,
		"trimSuffix": strings.TrimSuffix,
	}
}
