package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProbeDefaults(t *testing.T) {
	pc, err := LoadProbe()
	require.NoError(t, err)
	assert.False(t, pc.Enabled)
	assert.Equal(t, 5*time.Minute, pc.Interval)
	assert.Equal(t, 2*time.Second, pc.Timeout)
	assert.Equal(t, 5, pc.Concurrency)
	assert.False(t, pc.ARP)
}

func TestLoadProbeFromEnv(t *testing.T) {
	t.Setenv("NETINV_PROBE_ENABLED", "true")
	t.Setenv("NETINV_PROBE_INTERVAL", "30s")
	t.Setenv("NETINV_PROBE_CONCURRENCY", "12")
	t.Setenv("NETINV_PROBE_ARP", "true")

	pc, err := LoadProbe()
	require.NoError(t, err)
	assert.True(t, pc.Enabled)
	assert.Equal(t, 30*time.Second, pc.Interval)
	assert.Equal(t, 12, pc.Concurrency)
	assert.True(t, pc.ARP)
}

func TestLoadProbeRejectsBadValues(t *testing.T) {
	t.Setenv("NETINV_PROBE_CONCURRENCY", "0")
	_, err := LoadProbe()
	assert.Error(t, err)

	t.Setenv("NETINV_PROBE_CONCURRENCY", "3")
	t.Setenv("NETINV_PROBE_INTERVAL", "soon")
	_, err = LoadProbe()
	assert.Error(t, err)
}

func TestLoadCarriesOTelEndpoint(t *testing.T) {
	t.Setenv("NETINV_OTEL_ENDPOINT", "localhost:4318")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsTracingEnabled())
	assert.False(t, cfg.IsAPIAuthEnabled())
}
