package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFlavor is returned when a distribution flavor string is not recognized.
	ErrUnknownFlavor = zerr.New("unknown distribution flavor")

	// ErrUnknownExtensionFilter is returned when an extension module filter string is not recognized.
	ErrUnknownExtensionFilter = zerr.New("unknown extension module filter")

	// ErrUnknownResourcesPolicy is returned when a resources policy string is not recognized.
	ErrUnknownResourcesPolicy = zerr.New("unknown resources policy")

	// ErrUnknownRunMode is returned when an interpreter run mode is not recognized.
	ErrUnknownRunMode = zerr.New("unknown run mode")

	// ErrNoDefaultDistribution is returned when the registry has no distribution for a flavor and triple.
	ErrNoDefaultDistribution = zerr.New("no default distribution for flavor and target")

	// ErrRegistryParseFailed is returned when the distribution registry cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse distribution registry")

	// ErrChecksumMismatch is returned when a distribution archive does not match its expected checksum.
	ErrChecksumMismatch = zerr.New("distribution checksum mismatch")

	// ErrDownloadFailed is returned when a distribution archive cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download distribution")

	// ErrArchiveReadFailed is returned when a distribution archive cannot be read.
	ErrArchiveReadFailed = zerr.New("failed to read distribution archive")

	// ErrUnsupportedArchive is returned when a distribution archive has an unknown format.
	ErrUnsupportedArchive = zerr.New("unsupported distribution archive format")

	// ErrUnsafeArchivePath is returned when an archive entry would be extracted outside its destination.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes extraction directory")

	// ErrMetadataInvalid is returned when the PYTHON.json metadata of a distribution is invalid.
	ErrMetadataInvalid = zerr.New("invalid distribution metadata")

	// ErrUnsupportedFlavor is returned when a distribution does not support the requested flavor.
	ErrUnsupportedFlavor = zerr.New("distribution does not support flavor")

	// ErrCompilerStartFailed is returned when the bytecode compiler process cannot be started.
	ErrCompilerStartFailed = zerr.New("failed to start bytecode compiler")

	// ErrCompileFailed is returned when a source module cannot be compiled to bytecode.
	ErrCompileFailed = zerr.New("failed to compile bytecode")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrResourceScanFailed is returned when a directory cannot be scanned for resources.
	ErrResourceScanFailed = zerr.New("failed to scan for resources")

	// ErrSitePackagesNotFound is returned when no site-packages directory exists under a prefix.
	ErrSitePackagesNotFound = zerr.New("could not find site-packages directory")

	// ErrStoreReadFailed is returned when the distribution store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read distribution store")

	// ErrStoreWriteFailed is returned when the distribution store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write distribution store")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrScriptNotFound is returned when the configuration script does not exist.
	ErrScriptNotFound = zerr.New("configuration script not found")

	// ErrEvaluationFailed is returned when the configuration script fails to evaluate.
	ErrEvaluationFailed = zerr.New("configuration script evaluation failed")
)
