package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mfraile/PyOxidizer/internal/adapters/config"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	settings, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "pyoxidizer.lua"), settings.Script)
	assert.Equal(t, filepath.Join(dir, ".pyoxidizer", "distributions"), settings.DistributionsPath)
	assert.Equal(t, domain.HostTriple(), settings.BuildTarget)
	assert.Empty(t, settings.Registry)
	assert.False(t, settings.Verbose)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `
version: "1"
script: build/app.lua
build_target: aarch64-apple-darwin
distributions_path: /var/cache/pyoxidizer
registry: registry.yaml
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyoxidizer.yaml"), []byte(content), 0o600))

	settings, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "build", "app.lua"), settings.Script)
	assert.Equal(t, "aarch64-apple-darwin", settings.BuildTarget)
	assert.Equal(t, "/var/cache/pyoxidizer", settings.DistributionsPath)
	assert.Equal(t, filepath.Join(dir, "registry.yaml"), settings.Registry)
	assert.True(t, settings.Verbose)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyoxidizer.yaml"), []byte("script: [unclosed"), 0o600))

	_, err := newLoader(t).Load(dir)
	require.ErrorContains(t, err, "failed to parse settings file")
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(deep, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pyoxidizer.lua"), []byte(""), 0o600))

	assert.Equal(t, root, config.FindProjectRoot(deep))
	assert.Equal(t, root, config.FindProjectRoot(root))

	orphan := t.TempDir()
	assert.Equal(t, orphan, config.FindProjectRoot(orphan))
}
