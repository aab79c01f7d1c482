package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	return dir + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, "sync", cfg.Storage.Area)
	assert.Equal(t, []string{"gorm"}, cfg.Storage.Backends)
	assert.Equal(t, "sqlite", cfg.DB.GormEngine)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.Equal(t, "info.log", cfg.Log.File.InfoLog)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read main config file")
}

func TestReadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
Title = "minimal"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
`)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
	assert.Equal(t, "sync", cfg.Storage.Area)
	assert.Equal(t, []string{"memory"}, cfg.Storage.Backends)
	assert.Equal(t, "extension_storage", cfg.Storage.Table)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":"Test Override","Webserver":{"Port":9090},"Storage":{"Area":"local"}}`)

	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, "local", cfg.Storage.Area)
	// untouched values survive the merge
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
}

func TestReadConfigWithBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(projectConfigPath(t))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	webserver := Webserver{Port: 8080, URL: "http://localhost:8080"}

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{Webserver: webserver},
		},
		{
			name:    "missing port",
			config:  Config{Webserver: Webserver{URL: "http://localhost:8080"}},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name:    "missing URL",
			config:  Config{Webserver: Webserver{Port: 8080}},
			wantErr: ErrEmptyURL,
		},
		{
			name: "gorm backend without engine",
			config: Config{
				Webserver: webserver,
				Storage:   Storage{Backends: []string{"memory", "gorm"}},
			},
			wantErr: ErrGormEngineRequired,
		},
		{
			name: "kv backend with postgres",
			config: Config{
				Webserver: webserver,
				Storage:   Storage{Backends: []string{"kv"}},
				DB:        DB{GormEngine: "postgres"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfigValidationRejectsUnknownValues(t *testing.T) {
	webserver := Webserver{Port: 8080, URL: "http://localhost:8080"}

	tests := []struct {
		name   string
		config Config
	}{
		{"unknown area", Config{Webserver: webserver, Storage: Storage{Area: "managed"}}},
		{"unknown backend", Config{Webserver: webserver, Storage: Storage{Backends: []string{"redis"}}}},
		{"unknown engine", Config{Webserver: webserver, DB: DB{GormEngine: "oracle"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, validate(&tt.config))
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Storage: Storage{Area: "sync", Backends: []string{"memory"}},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tomlStr, "Test"), "DumpConfig() output should contain Title")

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"Area": "sync"`)
}
