package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a", "b"}, CSV(" a, ,b ,"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CFG_STR", " value ")
	t.Setenv("CFG_INT", "42")
	t.Setenv("CFG_BAD_INT", "x")
	t.Setenv("CFG_I64", "-5")
	t.Setenv("CFG_BOOL", "true")

	assert.Equal(t, "value", EnvDefault("CFG_STR", "def"))
	assert.Equal(t, "def", EnvDefault("CFG_MISSING", "def"))
	assert.Equal(t, 42, EnvIntDefault("CFG_INT", 1))
	assert.Equal(t, 1, EnvIntDefault("CFG_BAD_INT", 1))
	assert.Equal(t, int64(7), EnvInt64Default("CFG_I64", 7))
	assert.True(t, EnvBoolDefault("CFG_BOOL", false))
	assert.False(t, EnvBoolDefault("CFG_MISSING", false))
	assert.Equal(t, "value", EnvFirst("def", "CFG_MISSING", "CFG_STR"))
	assert.Equal(t, "def", EnvFirst("def", "CFG_MISSING"))
}

func TestRequireNonEmpty(t *testing.T) {
	require.NoError(t, RequireNonEmpty("x", "A", "y", "B"))

	err := RequireNonEmpty("x", "A", "", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "B")
}
