package standalone_test

import (
	"path/filepath"
	"testing"

	"github.com/mfraile/PyOxidizer/internal/adapters/standalone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	meta, err := standalone.ParseMetadata([]byte(fixtureMetadata), "/dist/python")
	require.NoError(t, err)

	assert.Equal(t, 7, meta.FormatVersion)
	assert.Equal(t, "3.11.7", meta.PythonVersion)
	assert.Equal(t, "x86_64-unknown-linux-gnu", meta.TargetTriple)
	assert.Equal(t, filepath.Join("/dist/python", "install", "bin", "python3"), meta.PythonExe)
	assert.Equal(t, filepath.Join("/dist/python", "install", "lib", "python3.11"), meta.PythonStdlib)
	assert.Equal(t, "static", meta.LibpythonLink)
	assert.Equal(t, []string{"_codecs", "_json", "_readline", "_socket", "_ssl"}, meta.ExtensionNames())

	readline := meta.Extensions["_readline"]
	require.Len(t, readline, 2)
	assert.Equal(t, "libedit", readline[0].Variant)
	assert.Equal(t, "readline", readline[1].Variant)

	ssl := meta.Extensions["_ssl"][0]
	assert.True(t, ssl.LinksNonSystemLibraries())
	assert.Equal(t, filepath.Join("/dist/python", "install", "lib", "python3.11", "lib-dynload", "_ssl.so"), ssl.Filename)
	path, ok := ssl.Module.Path()
	require.True(t, ok)
	assert.Equal(t, ssl.Filename, path)

	codecs := meta.Extensions["_codecs"][0]
	assert.True(t, codecs.Builtin)
	assert.True(t, codecs.Required)
	assert.Empty(t, codecs.Filename)
}

func TestParseMetadata_TestPackages(t *testing.T) {
	meta, err := standalone.ParseMetadata([]byte(fixtureMetadata), "/dist/python")
	require.NoError(t, err)

	assert.True(t, meta.IsTestPackage("idlelib.idle_test"))
	assert.True(t, meta.IsTestPackage("json.tests"))
	assert.True(t, meta.IsTestPackage("test.support"))
	assert.False(t, meta.IsTestPackage("json"))
	assert.False(t, meta.IsTestPackage("testing"))
}

func TestParseMetadata_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "{"},
		{name: "old format", doc: `{"version": "4", "python_exe": "bin/python"}`},
		{name: "missing exe", doc: `{"version": "7", "python_paths": {"stdlib": "lib"}}`},
		{name: "missing stdlib", doc: `{"version": "7", "python_exe": "bin/python"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := standalone.ParseMetadata([]byte(tt.doc), "/dist/python")
			require.ErrorContains(t, err, "invalid distribution metadata")
		})
	}
}
