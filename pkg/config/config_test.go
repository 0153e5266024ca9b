package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnmolluscs/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnmolluscs"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnmolluscs", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnmolluscs", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "data/raw", cfg.Input.Dir)
		assert.Equal(t, "taxa.csv", cfg.Input.TaxaFile)
		assert.Equal(t, "synonyms.csv", cfg.Input.SynonymsFile)
		assert.Equal(t, "vernacular_names.csv", cfg.Input.VernacularsFile)
		assert.Equal(t, "references.csv", cfg.Input.ReferencesFile)
		assert.Equal(t, "data/processed", cfg.Output.Dir)
		assert.False(t, cfg.Output.WithProgress)

		assert.Equal(t, "alien-molluscs-checklist", cfg.Dataset.ShortName)
		assert.Equal(t, "RBINS", cfg.Dataset.InstitutionCode)
		assert.Equal(t, "en", cfg.Dataset.Language)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Empty(t, cfg.ProParte)
	})
}

func TestInputPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptInputDir("/tmp/raw")})
	assert.Equal(t, filepath.Join("/tmp/raw", "taxa.csv"),
		cfg.InputPath(cfg.Input.TaxaFile))
}

func TestOptionInputDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/data/in",
			expected: "/data/in",
		},
		{
			name:     "trims whitespace",
			input:    "  /data/in  ",
			expected: "/data/in",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "data/raw",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "data/raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptInputDir(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Input.Dir)
		})
	}
}

func TestOptionDatasetShortName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid short name",
			input:    "alien-fishes-checklist",
			expected: "alien-fishes-checklist",
		},
		{
			name:     "ignores uppercase",
			input:    "Alien-Fishes",
			expected: "alien-molluscs-checklist",
		},
		{
			name:     "ignores colon",
			input:    "alien:fishes",
			expected: "alien-molluscs-checklist",
		},
		{
			name:     "ignores empty",
			input:    "",
			expected: "alien-molluscs-checklist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatasetShortName(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Dataset.ShortName)
		})
	}
}

func TestOptionProParte(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets names",
			input:    []string{"Helix balteata Pollonera, 1892"},
			expected: []string{"Helix balteata Pollonera, 1892"},
		},
		{
			name:     "drops empty names",
			input:    []string{" ", "Helix balteata Pollonera, 1892 "},
			expected: []string{"Helix balteata Pollonera, 1892"},
		},
		{
			name:     "ignores empty slice",
			input:    []string{},
			expected: nil,
		},
		{
			name:     "ignores nil",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptProParte(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.ProParte)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - warn",
			input:    "warn",
			expected: "warn",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid format - text",
			input:    "text",
			expected: "text",
		},
		{
			name:     "sets valid format - tint",
			input:    "tint",
			expected: "tint",
		},
		{
			name:     "ignores invalid value",
			input:    "xml",
			expected: "json", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogFormat(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Format)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputDir("/in"),
		config.OptOutputDir("/out"),
		config.OptOutputWithProgress(true),
		config.OptOutputMetricsFile("/var/lib/node_exporter/gnmolluscs.prom"),
		config.OptDatasetID("https://example.org/dataset"),
		config.OptProParte([]string{"Helix balteata Pollonera, 1892"}),
		config.OptLogFormat("tint"),
		config.OptHomeDir("/home/user"),
	})

	res := config.New()
	res.Update(cfg.ToOptions())

	assert.Equal(t, "/in", res.Input.Dir)
	assert.Equal(t, "/out", res.Output.Dir)
	assert.True(t, res.Output.WithProgress)
	assert.Equal(t, "/var/lib/node_exporter/gnmolluscs.prom", res.Output.MetricsFile)
	assert.Equal(t, "https://example.org/dataset", res.Dataset.ID)
	assert.Equal(t, cfg.ProParte, res.ProParte)
	assert.Equal(t, "tint", res.Log.Format)
	assert.Empty(t, res.HomeDir, "HomeDir is runtime-only")
}
