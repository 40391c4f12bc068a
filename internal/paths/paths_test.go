package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/arquetipo", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "arquetipo"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})
}

func TestResolveReportsDir(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvReportsDir, "/tmp/env-reports")
		got, err := ResolveReportsDir("/tmp/flag-reports", "/tmp/cfg-reports")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-reports", got)
	})

	t.Run("config beats env", func(t *testing.T) {
		t.Setenv(EnvReportsDir, "/tmp/env-reports")
		got, err := ResolveReportsDir("", "/tmp/cfg-reports")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cfg-reports", got)
	})

	t.Run("env beats cwd", func(t *testing.T) {
		t.Setenv(EnvReportsDir, "/tmp/env-reports")
		got, err := ResolveReportsDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-reports", got)
	})

	t.Run("defaults to cwd", func(t *testing.T) {
		t.Setenv(EnvReportsDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveReportsDir("", "")
		require.NoError(t, err)
		assert.Equal(t, cwd, got)
	})
}
