package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("COBRADOR_TEST_DIR", "/tmp/dados")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/dados/app.db", filepath.Join(home, "dados/app.db")},
		{"$COBRADOR_TEST_DIR/app.db", "/tmp/dados/app.db"},
		{"/var/lib/app.db", "/var/lib/app.db"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.input))
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Contains(t, cfg.StoragePath, "cobrador.db")

	viper.Set("storage.path", "/tmp/outro.db")
	viper.Set("logging.level", "debug")
	viper.Set("alerts.expense_threshold", 750.0)

	cfg = Load()
	assert.Equal(t, "/tmp/outro.db", cfg.StoragePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 750.0, cfg.LimiteDespesa, 0.001)
}
