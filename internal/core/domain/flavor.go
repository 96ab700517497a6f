package domain

import "go.trai.ch/zerr"

// DistributionFlavor is the build and linkage variant of a Python distribution.
type DistributionFlavor int

const (
	// FlavorStandalone is a standalone distribution with the platform's default linkage.
	FlavorStandalone DistributionFlavor = iota
	// FlavorStandaloneStatic is a standalone distribution with a statically linked libpython.
	FlavorStandaloneStatic
	// FlavorStandaloneDynamic is a standalone distribution with a dynamically linked libpython.
	FlavorStandaloneDynamic
)

// String returns the script identifier of the flavor.
func (f DistributionFlavor) String() string {
	switch f {
	case FlavorStandalone:
		return "standalone"
	case FlavorStandaloneStatic:
		return "standalone_static"
	case FlavorStandaloneDynamic:
		return "standalone_dynamic"
	default:
		return "unknown"
	}
}

// ParseFlavor parses a script identifier into a DistributionFlavor.
func ParseFlavor(s string) (DistributionFlavor, error) {
	switch s {
	case "standalone":
		return FlavorStandalone, nil
	case "standalone_static":
		return FlavorStandaloneStatic, nil
	case "standalone_dynamic":
		return FlavorStandaloneDynamic, nil
	default:
		return 0, zerr.With(ErrUnknownFlavor, "flavor", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f DistributionFlavor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *DistributionFlavor) UnmarshalText(text []byte) error {
	parsed, err := ParseFlavor(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
