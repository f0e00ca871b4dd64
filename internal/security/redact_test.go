package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactInputs(t *testing.T) {
	inputs := map[string]string{
		"tendencia_emergente": "IA Generativa",
		"api_token":           "abc",
		"aprendizados":        strings.Repeat("á", 10),
	}

	redacted := RedactInputs(inputs, 4)
	require.Equal(t, "IA G…", redacted["tendencia_emergente"])
	require.Equal(t, "***", redacted["api_token"])
	require.Equal(t, "áááá…", redacted["aprendizados"])
	require.Equal(t, "IA Generativa", inputs["tendencia_emergente"])
	require.Nil(t, RedactInputs(nil, 4))
}

func TestRedactInputsDefaultLength(t *testing.T) {
	long := strings.Repeat("x", DefaultMaxValueLength+10)
	redacted := RedactInputs(map[string]string{"problema": long}, 0)
	require.Equal(t, long[:DefaultMaxValueLength]+"…", redacted["problema"])
}

func TestRedactHeaders(t *testing.T) {
	redacted := RedactHeaders(map[string]string{
		"Authorization": "Bearer x",
		"X-API-Key":     "k",
		"X-Tenant":      "acme",
	})
	require.Equal(t, "***", redacted["Authorization"])
	require.Equal(t, "***", redacted["X-API-Key"])
	require.Equal(t, "acme", redacted["X-Tenant"])
}
