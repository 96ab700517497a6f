package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ResourcesLocation is where the embedded executable loads a resource from.
type ResourcesLocation int

const (
	// ResourcesInMemory loads resources from memory inside the executable.
	ResourcesInMemory ResourcesLocation = iota
	// ResourcesRelativePath loads resources from a path relative to the executable.
	ResourcesRelativePath
)

// ResourcesPolicy governs how discovered resources are embedded into an executable.
type ResourcesPolicy struct {
	mode   resourcesMode
	prefix string
}

type resourcesMode int

const (
	modeInMemoryOnly resourcesMode = iota
	modeFilesystemRelativeOnly
	modePreferInMemoryFallbackFilesystemRelative
)

const (
	policyInMemoryOnly       = "in-memory-only"
	policyFilesystemRelative = "filesystem-relative-only:"
	policyPreferInMemory     = "prefer-in-memory-fallback-filesystem-relative:"
)

// InMemoryOnly returns the policy that embeds every resource in memory.
func InMemoryOnly() ResourcesPolicy {
	return ResourcesPolicy{mode: modeInMemoryOnly}
}

// ParseResourcesPolicy parses a script identifier into a ResourcesPolicy.
func ParseResourcesPolicy(s string) (ResourcesPolicy, error) {
	switch {
	case s == policyInMemoryOnly:
		return InMemoryOnly(), nil
	case strings.HasPrefix(s, policyFilesystemRelative):
		return ResourcesPolicy{
			mode:   modeFilesystemRelativeOnly,
			prefix: strings.TrimPrefix(s, policyFilesystemRelative),
		}, nil
	case strings.HasPrefix(s, policyPreferInMemory):
		return ResourcesPolicy{
			mode:   modePreferInMemoryFallbackFilesystemRelative,
			prefix: strings.TrimPrefix(s, policyPreferInMemory),
		}, nil
	default:
		return ResourcesPolicy{}, zerr.With(ErrUnknownResourcesPolicy, "policy", s)
	}
}

// Prefix returns the relative path prefix for filesystem-relative policies.
func (p ResourcesPolicy) Prefix() string {
	return p.prefix
}

// Locations returns the resource locations the policy allows, in order of preference.
func (p ResourcesPolicy) Locations() ([]ResourcesLocation, error) {
	switch p.mode {
	case modeInMemoryOnly:
		return []ResourcesLocation{ResourcesInMemory}, nil
	case modeFilesystemRelativeOnly:
		return []ResourcesLocation{ResourcesRelativePath}, nil
	case modePreferInMemoryFallbackFilesystemRelative:
		return []ResourcesLocation{ResourcesInMemory, ResourcesRelativePath}, nil
	default:
		err := zerr.Wrap(ErrUnknownResourcesPolicy, "cannot place resources")
		return nil, zerr.With(err, "mode", int(p.mode))
	}
}

// String returns the script identifier of the policy.
func (p ResourcesPolicy) String() string {
	switch p.mode {
	case modeFilesystemRelativeOnly:
		return policyFilesystemRelative + p.prefix
	case modePreferInMemoryFallbackFilesystemRelative:
		return policyPreferInMemory + p.prefix
	default:
		return policyInMemoryOnly
	}
}
