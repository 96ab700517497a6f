package domain

import "time"

// DistributionRecord describes a distribution that was fetched and extracted on disk.
// Digest is the content hash of the extracted PYTHON.json.
type DistributionRecord struct {
	// Key identifies the extraction; it is derived from the archive checksum and flavor.
	Key        string             `json:"key,omitzero"`
	Flavor     DistributionFlavor `json:"flavor"`
	Source     string             `json:"source,omitzero"`
	Checksum   string             `json:"sha256,omitzero"`
	Path       string             `json:"path,omitzero"`
	PythonExe  string             `json:"python_exe,omitzero"`
	Version    string             `json:"version,omitzero"`
	Digest     string             `json:"digest,omitzero"`
	ResolvedAt time.Time          `json:"resolved_at,omitzero"`
}

// RegistryEntry is a known distribution published for a target triple.
type RegistryEntry struct {
	Flavor   DistributionFlavor
	Triple   string
	Location DistributionLocation
}
