package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDurationOrDefault(t *testing.T) {
	require.Equal(t, 5*time.Second, ParseDurationOrDefault("", 5*time.Second))
	require.Equal(t, 5*time.Second, ParseDurationOrDefault("soon", 5*time.Second))
	require.Equal(t, 5*time.Second, ParseDurationOrDefault("-1s", 5*time.Second))
	require.Equal(t, 30*time.Second, ParseDurationOrDefault(" 30s ", 5*time.Second))
	require.Equal(t, time.Duration(0), ParseDurationOrDefault("0s", 5*time.Second))
}
