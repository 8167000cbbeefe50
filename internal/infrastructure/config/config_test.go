package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, 25, cfg.Client.KeyboardStep)
	assert.Equal(t, 8, cfg.Client.ActivationDistance)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TICKETBOARD_CLIENT_TOKEN", "tok")
	t.Setenv("TICKETBOARD_CLIENT_REQUEST_TIMEOUT", "3s")
	t.Setenv("TICKETBOARD_SERVER_PORT", "9090")

	cfg, err := Load("release")
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.Client.Token)
	assert.Equal(t, 3*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestValidateClient(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Client.Token = ""
	assert.Error(t, cfg.ValidateClient())

	cfg.Client.Token = "tok"
	assert.NoError(t, cfg.ValidateClient())

	cfg.Client.BaseURL = "not a url"
	assert.Error(t, cfg.ValidateClient())
}
