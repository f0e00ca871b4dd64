package configs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsEmbedded(t *testing.T) {
	require.Contains(t, Names(), DefaultName)

	data, err := Default()
	require.NoError(t, err)
	require.Contains(t, string(data), "execute_path: /api/ai-tools/execute")

	_, err = Load("")
	require.Error(t, err)
	_, err = Load("absent.yaml")
	require.Error(t, err)
}
