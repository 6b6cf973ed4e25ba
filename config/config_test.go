package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/servedir/config"
)

func serveFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags.StringP("root", "r", ".", "")
	flags.StringP("ip", "i", "0.0.0.0", "")
	flags.IntP("port", "p", 8000, "")
	flags.BoolP("upload", "u", false, "")
	flags.StringP("auth", "a", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ".", cfg.Storage.Root)
	assert.False(t, cfg.Upload.Enabled)
	assert.Empty(t, cfg.Auth.Credential)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  host: 127.0.0.1
  port: 9090
storage:
  root: /srv/files
upload:
  enabled: true
auth:
  credential: admin:secret
log:
  level: debug
`), 0o644))

	cfg, err := config.Load([]string{file}, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/files", cfg.Storage.Root)
	assert.True(t, cfg.Upload.Enabled)
	assert.Equal(t, "admin:secret", cfg.Auth.Credential)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVEDIR_SERVER_PORT", "9000")
	t.Setenv("SERVEDIR_UPLOAD_ENABLED", "true")
	t.Setenv("SERVEDIR_AUTH_CREDENTIAL", "env:user")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Upload.Enabled)
	assert.Equal(t, "env:user", cfg.Auth.Credential)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("SERVEDIR_SERVER_PORT", "9000")

	flags := serveFlags()
	require.NoError(t, flags.Set("port", "7777"))
	require.NoError(t, flags.Set("auth", "flag:pass"))

	cfg, err := config.Load(nil, flags)
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "flag:pass", cfg.Auth.Credential)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	t.Setenv("SERVEDIR_SERVER_PORT", "9000")

	// Flags exist but were never set on the command line; the env value
	// must win over their defaults.
	cfg, err := config.Load(nil, serveFlags())
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "host must be an ip", key: "SERVEDIR_SERVER_HOST", value: "not-an-ip"},
		{name: "port must be in range", key: "SERVEDIR_SERVER_PORT", value: "70000"},
		{name: "credential needs a colon", key: "SERVEDIR_AUTH_CREDENTIAL", value: "nocolon"},
		{name: "log level must be known", key: "SERVEDIR_LOG_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(nil, nil)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
		})
	}
}
