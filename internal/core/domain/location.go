package domain

import "fmt"

// LocationKind tags the addressing mode of a DistributionLocation.
type LocationKind int

const (
	// LocationLocal addresses a distribution archive on the local filesystem.
	LocationLocal LocationKind = iota
	// LocationURL addresses a distribution archive by URL.
	LocationURL
)

// DistributionLocation describes where a distribution archive lives.
// Exactly one of Path or URL is meaningful, selected by Kind.
// The checksum is carried through opaquely; verification belongs to the resolver.
type DistributionLocation struct {
	Kind     LocationKind
	Path     string
	URL      string
	Checksum string
}

// LocalLocation returns a location addressing a local archive.
func LocalLocation(path, checksum string) DistributionLocation {
	return DistributionLocation{Kind: LocationLocal, Path: path, Checksum: checksum}
}

// URLLocation returns a location addressing a remote archive.
func URLLocation(url, checksum string) DistributionLocation {
	return DistributionLocation{Kind: LocationURL, URL: url, Checksum: checksum}
}

// Source returns the path or URL, whichever the location addresses.
func (l DistributionLocation) Source() string {
	if l.Kind == LocationLocal {
		return l.Path
	}
	return l.URL
}

// String renders the location for script-visible representations.
func (l DistributionLocation) String() string {
	if l.Kind == LocationLocal {
		return fmt.Sprintf("Local { local_path: %q, sha256: %q }", l.Path, l.Checksum)
	}
	return fmt.Sprintf("Url { url: %q, sha256: %q }", l.URL, l.Checksum)
}
