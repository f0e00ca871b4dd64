package render

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
)

// EnvTracker records environment variables read with env but unset.
type EnvTracker struct {
	missing map[string]struct{}
}

func (t *EnvTracker) markMissing(key string) {
	if t == nil {
		return
	}
	if t.missing == nil {
		t.missing = map[string]struct{}{}
	}
	t.missing[key] = struct{}{}
}

// Missing returns the sorted names of variables read with env but unset.
func (t *EnvTracker) Missing() []string {
	return sortedSet(t.missing)
}

// RenderFile loads and renders a YAML template file.
func RenderFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return RenderBytes(path, raw)
}

// RenderBytes renders a YAML template. Variables read with env must be set;
// envOr supplies a default instead.
func RenderBytes(name string, raw []byte) ([]byte, error) {
	tracker := &EnvTracker{}
	if strings.TrimSpace(name) == "" {
		name = "config"
	}
	tmpl, err := template.New(name).Funcs(FuncMap(tracker)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{}); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	if missing := tracker.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}
	return buf.Bytes(), nil
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
