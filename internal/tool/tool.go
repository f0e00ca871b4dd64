package tool

import "strings"

// ID identifies one of the fixed generation workflows.
type ID string

// Known tool identifiers.
const (
	TrendImpactAnalysis   ID = "trend-impact-analysis"
	LegacyCreative        ID = "legacy-creative"
	IntelligenceExtension ID = "intelligence-extension"
	SustainableSolutions  ID = "sustainable-solutions"
	ReinventionManifesto  ID = "reinvention-manifesto"
	ProfessionalMap       ID = "professional-map"
)

func (id ID) String() string {
	return string(id)
}

// Field describes one form input of a tool.
type Field struct {
	// Name is the input key sent to the backend.
	Name string `json:"name"`
	// Label is the form label.
	Label string `json:"label"`
	// MinLength is the minimum accepted length in characters.
	MinLength int `json:"minLength"`
	// Message is shown when the value is too short.
	Message string `json:"message"`
}

// Info describes a tool for listings.
type Info struct {
	// Name is the tool identifier.
	Name ID `json:"name"`
	// DisplayName is the human-friendly title.
	DisplayName string `json:"displayName"`
	// Description explains what the tool produces.
	Description string `json:"description"`
	// Model is the generation model requested for the tool.
	Model string `json:"model,omitempty"`
	// Fields lists the form inputs.
	Fields []Field `json:"fields"`
}

// Definition binds a tool's catalog entry to its fallback content. Every tool
// must provide both.
type Definition interface {
	// Info returns the catalog entry.
	Info() Info
	// Fallback builds the substitute payload from the submitted inputs.
	Fallback(inputs map[string]string) any
}

var definitions = []Definition{
	trendImpactAnalysis{},
	legacyCreative{},
	intelligenceExtension{},
	sustainableSolutions{},
	reinventionManifesto{},
	professionalMap{},
}

var byID = func() map[ID]Definition {
	out := make(map[ID]Definition, len(definitions))
	for _, def := range definitions {
		out[def.Info().Name] = def
	}
	return out
}()

// All returns tool identifiers in menu order.
func All() []ID {
	out := make([]ID, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, def.Info().Name)
	}
	return out
}

// Parse returns the ID for raw if it names a known tool.
func Parse(raw string) (ID, bool) {
	id := ID(strings.TrimSpace(raw))
	_, ok := byID[id]
	return id, ok
}

// Lookup returns the definition registered for name.
func Lookup(name string) (Definition, bool) {
	def, ok := byID[ID(name)]
	return def, ok
}

// Catalog returns the catalog entries in menu order.
func Catalog() []Info {
	return CatalogFor("")
}

// CatalogFor returns the catalog entries with Model set to model.
func CatalogFor(model string) []Info {
	out := make([]Info, 0, len(definitions))
	for _, def := range definitions {
		info := def.Info()
		info.Model = model
		out = append(out, info)
	}
	return out
}

// Fabricate builds the fallback payload for name. It reports false for
// unknown tools.
func Fabricate(name string, inputs map[string]string) (any, bool) {
	def, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return def.Fallback(inputs), true
}

func value(inputs map[string]string, key, def string) string {
	if inputs == nil {
		return def
	}
	v := strings.TrimSpace(inputs[key])
	if v == "" {
		return def
	}
	return v
}
