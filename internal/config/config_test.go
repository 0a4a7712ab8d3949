package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantLevel string
		wantFmt   string
		wantErr   string
	}{
		{
			name:      "debug json",
			env:       map[string]string{"HBSUBST_LOG_LEVEL": "debug", "HBSUBST_LOG_FORMAT": "json"},
			wantLevel: "debug",
			wantFmt:   "json",
		},
		{
			name:      "unprefixed variables are ignored",
			env:       map[string]string{"LOG_LEVEL": "debug"},
			wantLevel: "warn",
			wantFmt:   "console",
		},
		{
			name:    "invalid level",
			env:     map[string]string{"HBSUBST_LOG_LEVEL": "loud"},
			wantErr: "HBSUBST_LOG_LEVEL must be one of",
		},
		{
			name:    "invalid format",
			env:     map[string]string{"HBSUBST_LOG_FORMAT": "xml"},
			wantErr: "HBSUBST_LOG_FORMAT must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(tt.env)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantFmt, cfg.LogFormat)
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{LogLevel: "info", LogFormat: "json"}
	assert.Equal(t, "Config{LogLevel=info, LogFormat=json}", cfg.String())
}
