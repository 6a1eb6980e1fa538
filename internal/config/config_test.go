package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"THERMO_INPUT", "THERMO_OUTPUT", "THERMO_FORMAT", "THERMO_PRETTY", "THERMO_LOG_LEVEL", "THERMO_LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Themodynamic and Transport Properties.xlsm", cfg.Input)
	assert.Equal(t, "data/thermo_tables.json", cfg.Output)
	assert.Equal(t, "", cfg.Format)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAge)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("THERMO_OUTPUT", "out/tables.yaml")
	t.Setenv("THERMO_PRETTY", "false")
	t.Setenv("THERMO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "out/tables.yaml", cfg.Output)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("THERMO_LOG_MAX_SIZE", "lots")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFrom(t *testing.T) {
	t.Setenv("THERMO_INPUT", "from-env.xlsx")
	t.Setenv("THERMO_FORMAT", "")

	envfile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envfile, []byte("THERMO_INPUT=from-file.xlsm\nTHERMO_FORMAT=sqlite\n"), 0644))

	cfg, err := LoadFrom(envfile)
	require.NoError(t, err)
	assert.Equal(t, "from-file.xlsm", cfg.Input)
	assert.Equal(t, "sqlite", cfg.Format)
}

func TestLoadFromMissingFile(t *testing.T) {
	t.Setenv("THERMO_INPUT", "from-env.xlsx")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-env.xlsx", cfg.Input)

	cfg, err = LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.xlsx", cfg.Input)
}
