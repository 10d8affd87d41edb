package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_FlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	addr, err := cmd.Flags().GetString("addr")
	require.NoError(t, err)
	assert.Equal(t, defaultAddr, addr)

	ttl, err := cmd.Flags().GetDuration("token-ttl")
	require.NoError(t, err)
	assert.Equal(t, defaultTokenTTL, ttl)

	secret, err := cmd.Flags().GetString("jwt-secret")
	require.NoError(t, err)
	assert.Empty(t, secret)
}

func TestRootCmd_ParsesFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--addr", ":9000", "--token-ttl", "1h", "--log-format", "json"}))

	ttl, _ := cmd.Flags().GetDuration("token-ttl")
	assert.Equal(t, time.Hour, ttl)
	format, _ := cmd.Flags().GetString("log-format")
	assert.Equal(t, "json", format)
}

func TestServe_RejectsBadLogLevel(t *testing.T) {
	err := serve(t.Context(), &serveConfig{logLevel: "loud"})
	assert.Error(t, err)
}
