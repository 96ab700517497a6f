package domain

import "go.trai.ch/zerr"

// ExtensionModuleFilter narrows the extension modules eligible for inclusion.
type ExtensionModuleFilter int

const (
	// FilterMinimal keeps only extension modules the interpreter requires to start.
	FilterMinimal ExtensionModuleFilter = iota
	// FilterAll keeps every extension module.
	FilterAll
	// FilterNoLibraries drops extension modules that link against non-system libraries.
	FilterNoLibraries
	// FilterNoGPL drops extension modules that link against GPL licensed libraries.
	FilterNoGPL
)

// String returns the script identifier of the filter.
func (f ExtensionModuleFilter) String() string {
	switch f {
	case FilterMinimal:
		return "minimal"
	case FilterAll:
		return "all"
	case FilterNoLibraries:
		return "no-libraries"
	case FilterNoGPL:
		return "no-gpl"
	default:
		return "unknown"
	}
}

// ParseExtensionModuleFilter parses a script identifier into an ExtensionModuleFilter.
func ParseExtensionModuleFilter(s string) (ExtensionModuleFilter, error) {
	switch s {
	case "minimal":
		return FilterMinimal, nil
	case "all":
		return FilterAll, nil
	case "no-libraries":
		return FilterNoLibraries, nil
	case "no-gpl":
		return FilterNoGPL, nil
	default:
		return 0, zerr.With(ErrUnknownExtensionFilter, "filter", s)
	}
}
