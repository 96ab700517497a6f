package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".pyoxidizer"

	// DistributionsDirName is the name of the directory holding fetched distributions.
	DistributionsDirName = "distributions"

	// StagingDirName is the name of the directory holding pip and setup.py install trees.
	StagingDirName = "staging"

	// StoreFileName is the name of the resolved distribution record store.
	StoreFileName = "distributions.json"

	// ScriptFileName is the default name of the configuration script.
	ScriptFileName = "pyoxidizer.lua"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "pyoxidizer.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStatePath returns the default root directory for pyoxidizer state.
func DefaultStatePath() string {
	return StateDirName
}

// DefaultDistributionsPath returns the default directory for fetched distributions.
// It joins .pyoxidizer and distributions.
func DefaultDistributionsPath() string {
	return filepath.Join(StateDirName, DistributionsDirName)
}

// DefaultStagingPath returns the default directory for install staging trees.
// It joins .pyoxidizer and staging.
func DefaultStagingPath() string {
	return filepath.Join(StateDirName, StagingDirName)
}

// DefaultStorePath returns the default path of the resolved distribution store.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreFileName)
}
