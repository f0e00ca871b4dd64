package tool

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// InputSchema returns the JSON Schema of the tool's input bag, or nil for
// unknown tools.
func InputSchema(name string) map[string]any {
	def, ok := Lookup(name)
	if !ok {
		return nil
	}
	info := def.Info()
	properties := make(map[string]any, len(info.Fields))
	required := make([]any, 0, len(info.Fields))
	for _, field := range info.Fields {
		properties[field.Name] = map[string]any{
			"type":        "string",
			"title":       field.Label,
			"minLength":   float64(field.MinLength),
			"description": field.Message,
		}
		required = append(required, field.Name)
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// ValidationError lists the inputs that did not satisfy the tool schema.
type ValidationError struct {
	// Tool is the validated tool.
	Tool ID
	// Fields maps field names to user-facing messages.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("invalid %s inputs: %s", e.Tool, strings.Join(parts, "; "))
}

// Validator checks input bags against the compiled tool schemas.
type Validator struct {
	schemas map[ID]*jsonschema.Schema
}

// NewValidator compiles the input schema of every known tool.
func NewValidator() (*Validator, error) {
	schemas := make(map[ID]*jsonschema.Schema, len(definitions))
	for _, id := range All() {
		location := fmt.Sprintf("%s.json", id)
		c := jsonschema.NewCompiler()
		if err := c.AddResource(location, InputSchema(string(id))); err != nil {
			return nil, fmt.Errorf("add schema resource %s: %w", id, err)
		}
		schema, err := c.Compile(location)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", id, err)
		}
		schemas[id] = schema
	}
	return &Validator{schemas: schemas}, nil
}

// Validate checks inputs for a known tool. Unknown tools are not validated.
func (v *Validator) Validate(name string, inputs map[string]string) error {
	def, ok := Lookup(name)
	if !ok || v == nil {
		return nil
	}
	info := def.Info()
	schema := v.schemas[info.Name]
	if schema == nil {
		return nil
	}

	instance := make(map[string]any, len(inputs))
	for key, val := range inputs {
		instance[key] = val
	}
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validate %s inputs: %w", info.Name, err)
	}

	failed := map[string]struct{}{}
	collectLocations(verr, failed)
	out := &ValidationError{Tool: info.Name, Fields: map[string]string{}}
	for _, field := range info.Fields {
		_, bad := failed[field.Name]
		if _, present := inputs[field.Name]; !present {
			bad = true
		}
		if bad {
			out.Fields[field.Name] = field.Message
		}
	}
	if len(out.Fields) == 0 {
		out.Fields["inputs"] = verr.Error()
	}
	return out
}

func collectLocations(verr *jsonschema.ValidationError, out map[string]struct{}) {
	if len(verr.InstanceLocation) > 0 {
		out[verr.InstanceLocation[0]] = struct{}{}
	}
	for _, cause := range verr.Causes {
		collectLocations(cause, out)
	}
}
