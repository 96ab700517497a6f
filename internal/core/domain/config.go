package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RunMode selects what the embedded interpreter does at startup.
type RunMode struct {
	// Kind is one of "repl", "module" or "eval".
	Kind  string
	Value string
}

// ParseRunMode parses "repl", "module:<name>" or "eval:<code>".
func ParseRunMode(s string) (RunMode, error) {
	if s == "repl" {
		return RunMode{Kind: "repl"}, nil
	}
	kind, value, ok := strings.Cut(s, ":")
	if ok && (kind == "module" || kind == "eval") && value != "" {
		return RunMode{Kind: kind, Value: value}, nil
	}
	return RunMode{}, zerr.With(ErrUnknownRunMode, "run_mode", s)
}

// String returns the script identifier of the run mode.
func (m RunMode) String() string {
	if m.Kind == "" || m.Kind == "repl" {
		return "repl"
	}
	return m.Kind + ":" + m.Value
}

// EmbeddedPythonConfig is the interpreter configuration embedded into a built executable.
type EmbeddedPythonConfig struct {
	OptimizeLevel      OptimizationLevel
	WriteBytecode      bool
	UnbufferedStdio    bool
	FilesystemImporter bool
	SysPaths           []string
	RunMode            RunMode
}

// DefaultEmbeddedPythonConfig returns the configuration used when a script supplies none.
func DefaultEmbeddedPythonConfig() EmbeddedPythonConfig {
	return EmbeddedPythonConfig{
		OptimizeLevel: OptimizeZero,
		RunMode:       RunMode{Kind: "repl"},
	}
}
