package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data/_debug/locations_array.txt", cfg.InputPath)
	assert.Equal(t, "data/alma/locations.csv", cfg.OutputPath)
	assert.Equal(t, "alma", cfg.SourceTag)
	assert.Equal(t, DefaultDenyList, cfg.DenyList())
	assert.Equal(t, cfg.OutputPath, cfg.LocationsCSV)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "INPUT_PATH=in.json\nOUTPUT_PATH=out/locations.csv\nSOURCE_TAG=acme\nDENY_LIST=france, , spain\nLOG_LEVEL=debug\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	t.Setenv("SOURCE_TAG", "override")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "in.json", cfg.InputPath)
	assert.Equal(t, "out/locations.csv", cfg.OutputPath)
	assert.Equal(t, "override", cfg.SourceTag)
	assert.Equal(t, []string{"france", "spain"}, cfg.DenyList())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		InputPath:  "in.json",
		OutputPath: "out.csv",
		SourceTag:  "alma",
		LogLevel:   "info",
		LogFormat:  "console",
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty input path", mutate: func(c *Config) { c.InputPath = " " }, expectError: true},
		{name: "empty output path", mutate: func(c *Config) { c.OutputPath = "" }, expectError: true},
		{name: "empty source tag", mutate: func(c *Config) { c.SourceTag = "" }, expectError: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, expectError: true},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
