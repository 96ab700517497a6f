// Package config provides the project settings loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using pyoxidizer.yaml.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads pyoxidizer.yaml from dir and fills in defaults. Relative paths
// in the file are resolved against dir. A missing file yields the defaults.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	path := filepath.Join(dir, domain.SettingsFileName)

	var file Settingsfile
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
		l.logger.Debug("loaded settings from " + path)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	settings := &domain.Settings{
		Script:            file.Script,
		BuildTarget:       file.BuildTarget,
		DistributionsPath: file.DistributionsPath,
		Registry:          file.Registry,
		Verbose:           file.Verbose,
	}
	applyDefaults(settings, dir)

	return settings, nil
}

func applyDefaults(s *domain.Settings, dir string) {
	if s.Script == "" {
		s.Script = domain.ScriptFileName
	}
	if s.DistributionsPath == "" {
		s.DistributionsPath = domain.DefaultDistributionsPath()
	}
	if s.BuildTarget == "" {
		s.BuildTarget = domain.HostTriple()
	}

	s.Script = resolve(dir, s.Script)
	s.DistributionsPath = resolve(dir, s.DistributionsPath)
	if s.Registry != "" {
		s.Registry = resolve(dir, s.Registry)
	}
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

// FindProjectRoot walks up from cwd to the first directory holding
// pyoxidizer.yaml or pyoxidizer.lua. It returns cwd when neither is found.
func FindProjectRoot(cwd string) string {
	dir := filepath.Clean(cwd)
	for {
		for _, name := range []string{domain.SettingsFileName, domain.ScriptFileName} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Clean(cwd)
		}
		dir = parent
	}
}
