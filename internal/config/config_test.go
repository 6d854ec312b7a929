package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strawberry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "strawberries.txt", cfg.Input)
	assert.Equal(t, "optimal_covering.txt", cfg.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Export.PDF)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
input: fields/run1.txt
logging:
  level: debug
export:
  pdf: report.pdf
  xlsx: report.xlsx
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fields/run1.txt", cfg.Input)
	assert.Equal(t, "optimal_covering.txt", cfg.Output, "unset keys keep their default")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "report.pdf", cfg.Export.PDF)
	assert.Equal(t, "report.xlsx", cfg.Export.Xlsx)
	assert.Empty(t, cfg.Export.DXF)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "input: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_EmptyOutputRejected(t *testing.T) {
	path := writeConfig(t, `output: ""`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output path")
}

func TestValidate_UnknownLogLevelRejected(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: loud
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
