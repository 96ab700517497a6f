package standalone_test

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const fixtureMetadata = `{
  "version": "7",
  "target_triple": "x86_64-unknown-linux-gnu",
  "python_version": "3.11.7",
  "python_exe": "install/bin/python3",
  "python_paths": {"stdlib": "install/lib/python3.11"},
  "libpython_link_mode": "static",
  "python_extension_module_suffix": ".cpython-311-x86_64-linux-gnu.so",
  "python_stdlib_test_packages": ["idlelib.idle_test", "ensurepip.tests"],
  "build_info": {
    "extensions": {
      "_ssl": [
        {
          "in_core": false,
          "required": false,
          "variant": "default",
          "shared_lib": "install/lib/python3.11/lib-dynload/_ssl.so",
          "links": [{"name": "ssl", "system": false}, {"name": "crypto", "system": false}],
          "licenses": ["OpenSSL"]
        }
      ],
      "_readline": [
        {"in_core": false, "variant": "libedit", "links": [{"name": "edit"}], "licenses": ["BSD-3-Clause"]},
        {"in_core": false, "variant": "readline", "links": [{"name": "readline"}], "licenses": ["GPL-3.0"]}
      ],
      "_codecs": [
        {"in_core": true, "required": true, "variant": "default"}
      ],
      "_json": [
        {"in_core": true, "required": false, "variant": "default"}
      ],
      "_socket": [
        {"in_core": false, "variant": "default", "links": [{"name": "c", "system": true}]}
      ]
    }
  }
}`

// fixtureFiles is the content of a small distribution, keyed by archive path.
func fixtureFiles() map[string]string {
	const stdlib = "python/install/lib/python3.11/"
	entries := [][2]string{
		{"python/PYTHON.json", fixtureMetadata},
		{"python/install/bin/python3", "#!/bin/sh\n"},
		{stdlib + "os.py", "import sys\n"},
		{stdlib + "json/__init__.py", "from .decoder import *\n"},
		{stdlib + "json/decoder.py", "class JSONDecoder: pass\n"},
		{stdlib + "json/tests/__init__.py", ""},
		{stdlib + "json/tests/test_x.py", "def test(): pass\n"},
		{stdlib + "email/__init__.py", ""},
		{stdlib + "email/architecture.rst", "docs\n"},
		{stdlib + "lib-dynload/_ssl.so", "\x7fELF"},
	}

	files := make(map[string]string, len(entries))
	for _, e := range entries {
		files[e[0]] = e[1]
	}
	return files
}

func buildTar(t *testing.T, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, name := range names {
		body := files[name]
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o755,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func writeZstdArchive(t *testing.T, dir string, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write(buildTar(t, files))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	p := filepath.Join(dir, "cpython-3.11.7-x86_64-unknown-linux-gnu-pgo-full.tar.zst")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o600))
	return p
}

func writeGzipArchive(t *testing.T, dir string, files map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(buildTar(t, files))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	p := filepath.Join(dir, "python.tar.gz")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o600))
	return p
}
