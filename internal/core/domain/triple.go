package domain

import "runtime"

// HostTriple returns the Rust-style target triple of the running host.
// Distribution registries are keyed by these triples.
func HostTriple() string {
	return Triple(runtime.GOOS, runtime.GOARCH)
}

// Triple maps a GOOS/GOARCH pair to a target triple.
func Triple(goos, goarch string) string {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}

	switch goos {
	case "linux":
		return arch + "-unknown-linux-gnu"
	case "darwin":
		return arch + "-apple-darwin"
	case "windows":
		return arch + "-pc-windows-msvc"
	default:
		return arch + "-unknown-" + goos
	}
}
