package genconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/relfiles/pkg/config"
	"github.com/arthur-debert/relfiles/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig_Print(t *testing.T) {
	result, err := GenConfig(Options{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "[editor]")
	assert.Empty(t, result.FilesWritten)
}

func TestGenConfig_Write(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigFile, "")
	t.Setenv(paths.EnvConfigDir, dir)

	result, err := GenConfig(Options{Write: true})
	require.NoError(t, err)

	target := filepath.Join(dir, paths.ConfigFileName)
	require.Equal(t, []string{target}, result.FilesWritten)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[[groups]]")
}

func TestGenConfig_WriteSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigFile, "")
	t.Setenv(paths.EnvConfigDir, dir)

	target := filepath.Join(dir, paths.ConfigFileName)
	require.NoError(t, os.WriteFile(target, []byte("# mine"), 0644))

	result, err := GenConfig(Options{Write: true})
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "# mine", string(content))
}

func TestGenConfig_Effective(t *testing.T) {
	cfg := &config.Config{
		Editor: config.EditorConfig{Command: "nvim"},
		Groups: []config.GroupConfig{
			{Name: "pair", Patterns: []string{"%1.c", "%1.h"}},
		},
	}

	result, err := GenConfig(Options{Effective: true, Config: cfg})
	require.NoError(t, err)
	assert.Contains(t, result.ConfigContent, "command = 'nvim'")
}
