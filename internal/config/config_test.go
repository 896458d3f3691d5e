package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.Verbose)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Empty(t, cfg.Output.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Config loaded without file mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "calc.yaml")

	configContent := `
verbose: true
output:
  format: "json"
  file: "result.json"`

	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0600))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	want := &Config{
		Verbose: true,
		Output: OutputConfig{
			Format: FormatJSON,
			File:   "result.json",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".calc.yml"), []byte("verbose: true\n"), 0600))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, FormatText, cfg.Output.Format, "empty format should fall back to default")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing file"},
		{name: "malformed yaml", content: ptr("output: [unterminated")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "calc.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(configFile, []byte(*tt.content), 0600))
			}

			cfg, err := Load(configFile)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{FormatText, false},
		{FormatJSON, false},
		{"html", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := Default()
			cfg.Output.Format = tt.format

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", DefaultFile)

	cfg := Default()
	cfg.Verbose = true
	cfg.Output.Format = FormatJSON

	require.NoError(t, cfg.Save(configFile))

	loaded, err := Load(configFile)
	require.NoError(t, err)

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("Saved config mismatch (-want +got):\n%s", diff)
	}
}

func ptr(s string) *string {
	return &s
}
