package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ConfigureWriter("debug", "json", &buf))
	t.Cleanup(func() { _ = Configure("info", "console") })

	Info("element stored", "element_id", "e-1")
	Warn("element not found", "element_id", "e-2")
	Debug("storing element")

	out := buf.String()
	assert.Contains(t, out, "element stored")
	assert.Contains(t, out, "e-1")
	assert.Contains(t, out, "element not found")
	assert.Contains(t, out, "storing element")
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ConfigureWriter("WARNING", "JSON", &buf))
	t.Cleanup(func() { _ = Configure("info", "console") })

	Debug("hidden")
	Info("also hidden")
	Error("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestConfigureRejectsUnknownSettings(t *testing.T) {
	var before, after bytes.Buffer
	require.NoError(t, ConfigureWriter("info", "json", &before))
	t.Cleanup(func() { _ = Configure("info", "console") })

	assert.EqualError(t, ConfigureWriter("verbose", "json", &after), `unknown log level "verbose"`)
	assert.EqualError(t, ConfigureWriter("info", "xml", &after), `unknown log format "xml"`)

	Info("still here")
	assert.Contains(t, before.String(), "still here")
	assert.Empty(t, after.String())
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{"DEBUG": "debug", " info ": "info", "warning": "warn", "Error": "error"} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("")
	assert.Error(t, err)
}
