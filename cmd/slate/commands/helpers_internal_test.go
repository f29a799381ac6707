package commands

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolFlag(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{}
	cmd.Flags().Bool("active", true, "")

	// Untouched flag reports nil so the filter stays out entirely.
	assert.Nil(t, boolFlag(cmd, "active"))

	require.NoError(t, cmd.Flags().Set("active", "false"))

	value := boolFlag(cmd, "active")
	require.NotNil(t, value)
	assert.False(t, *value)
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", formatTime(time.Time{}))
	assert.Equal(t, "yes", formatBool(true))
	assert.Equal(t, "no", formatBool(false))
	assert.Equal(t, "a, b", formatList([]string{"a", "b"}))
	assert.Equal(t, "", formatList(nil))
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long te...", truncate("long text that overflows", 10))
}

func TestParseVariables(t *testing.T) {
	t.Parallel()

	values, err := parseVariables([]string{
		"projectName=demo",
		"limit=5",
		"active=true",
		`ids=["a","b"]`,
	})
	require.NoError(t, err)

	assert.Equal(t, "demo", values["projectName"])
	assert.InDelta(t, 5.0, values["limit"], 0)
	assert.Equal(t, true, values["active"])
	assert.Equal(t, []any{"a", "b"}, values["ids"])
}

func TestParseVariablesInvalid(t *testing.T) {
	t.Parallel()

	_, err := parseVariables([]string{"no-equals"})
	require.Error(t, err)

	_, err = parseVariables([]string{"=value"})
	require.Error(t, err)
}

func TestParseVariablesEmpty(t *testing.T) {
	t.Parallel()

	values, err := parseVariables(nil)
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestSetConfigKey(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigKey(config, "server_url", "https://slate.example.com"))
	require.NoError(t, setConfigKey(config, "api_key", "key"))
	require.NoError(t, setConfigKey(config, "access_token", "token"))

	assert.Equal(t, "https://slate.example.com", config.ServerURL)
	assert.Equal(t, "key", config.APIKey)
	assert.Equal(t, "token", config.AccessToken)

	require.Error(t, setConfigKey(config, "bogus", "x"))
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "****", maskSecret("abc"))
	assert.Equal(t, "abcd****", maskSecret("abcdefgh"))
}
