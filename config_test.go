package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prepare parses args and applies the environment the same way Execute
// would, without starting the server.
func prepare(t *testing.T, args ...string) (*Config, error) {
	t.Helper()

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags(args))

	return cfg, cmd.PreRunE(cmd, nil)
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := prepare(t, "--env-file", "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.bind)
	assert.Equal(t, 8080, cfg.port)
	assert.Equal(t, 12*time.Hour, cfg.sessionTimeout)
	assert.Equal(t, "http", cfg.scheme())
}

func TestConfigEnvironment(t *testing.T) {
	t.Run("env fills unset flags", func(t *testing.T) {
		t.Setenv("SCOREBOX_PORT", "9090")
		t.Setenv("SCOREBOX_SESSION_TIMEOUT", "30m")

		cfg, err := prepare(t, "--env-file", "")
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.port)
		assert.Equal(t, 30*time.Minute, cfg.sessionTimeout)
	})

	t.Run("flags win over env", func(t *testing.T) {
		t.Setenv("SCOREBOX_PORT", "9090")

		cfg, err := prepare(t, "--env-file", "", "--port", "7070")
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.port)
	})

	t.Run("env file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scorebox.env")
		require.NoError(t, os.WriteFile(path, []byte("SCOREBOX_PREFIX=/scores\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("SCOREBOX_PREFIX") })

		cfg, err := prepare(t, "--env-file", path)
		require.NoError(t, err)

		assert.Equal(t, "/scores", cfg.prefix)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		_, err := prepare(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"))

		assert.NoError(t, err)
	})

	t.Run("bad env value is reported", func(t *testing.T) {
		t.Setenv("SCOREBOX_PORT", "eighty")

		_, err := prepare(t, "--env-file", "")

		assert.ErrorContains(t, err, "SCOREBOX_PORT")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"defaults", nil, true},
		{"port too low", []string{"--port", "0"}, false},
		{"port too high", []string{"--port", "70000"}, false},
		{"cert without key", []string{"--tls-cert", "cert.pem"}, false},
		{"cert and key", []string{"--tls-cert", "cert.pem", "--tls-key", "key.pem"}, true},
		{"negative timeout", []string{"--session-timeout", "-1m"}, false},
		{"disabled timeout", []string{"--session-timeout", "0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prepare(t, append([]string{"--env-file", ""}, tt.args...)...)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
