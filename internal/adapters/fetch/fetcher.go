// Package fetch makes distribution archives available locally and verifies their SHA-256.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/mfraile/PyOxidizer/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Minute

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher over the local filesystem and HTTP.
type Fetcher struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewFetcher creates a Fetcher with a default HTTP client.
func NewFetcher(logger ports.Logger) *Fetcher {
	return NewFetcherWithClient(logger, &http.Client{Timeout: httpClientTimeout})
}

// NewFetcherWithClient creates a Fetcher using client for downloads.
func NewFetcherWithClient(logger ports.Logger, client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client, logger: logger}
}

// Fetch returns the path of a local archive matching the location's checksum.
// Local archives are verified in place. Remote archives are downloaded into
// destDir once and reused while their digest still matches. When a URL
// location carries no checksum, the digest published at <url>.sha256 is used.
func (f *Fetcher) Fetch(ctx context.Context, location domain.DistributionLocation, destDir string) (string, error) {
	if location.Kind == domain.LocationLocal {
		if location.Checksum == "" {
			return location.Path, nil
		}
		if err := VerifyFile(location.Path, location.Checksum); err != nil {
			return "", err
		}
		return location.Path, nil
	}

	expected := location.Checksum
	if expected == "" {
		published, err := f.publishedChecksum(ctx, location.URL)
		if err != nil {
			return "", err
		}
		expected = published
	}

	name, err := archiveName(location.URL)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(destDir, name)

	if err := VerifyFile(dest, expected); err == nil {
		f.logger.Debug("reusing downloaded archive " + dest)
		return dest, nil
	}

	if err := os.MkdirAll(destDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "path", destDir)
	}

	f.logger.Info("downloading " + location.URL)
	if err := f.download(ctx, location.URL, dest, expected); err != nil {
		return "", err
	}
	return dest, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL, dest, expected string) error {
	body, err := f.get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck // read-only body

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), body); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}

	if err := compare(expected, hex.EncodeToString(h.Sum(nil))); err != nil {
		return zerr.With(err, "url", rawURL)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "path", dest)
	}
	return nil
}

func (f *Fetcher) publishedChecksum(ctx context.Context, rawURL string) (string, error) {
	body, err := f.get(ctx, rawURL+".sha256")
	if err != nil {
		return "", err
	}
	defer body.Close() //nolint:errcheck // read-only body

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL+".sha256")
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 || len(fields[0]) != sha256.Size*2 {
		return "", zerr.With(zerr.With(domain.ErrDownloadFailed, "url", rawURL+".sha256"), "reason", "malformed checksum file")
	}
	return strings.ToLower(fields[0]), nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		err := zerr.With(domain.ErrDownloadFailed, "url", rawURL)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}
	return resp.Body, nil
}

func archiveName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", zerr.With(zerr.With(domain.ErrDownloadFailed, "url", rawURL), "reason", "url has no file name")
	}
	// URL-encoded '+' shows up in python-build-standalone names.
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name, nil
}

// VerifyFile checks the SHA-256 of the file at path against expected hex.
func VerifyFile(path, expected string) error {
	f, err := os.Open(path) //nolint:gosec // path is an archive location chosen by the caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", path)
	}

	if err := compare(expected, hex.EncodeToString(h.Sum(nil))); err != nil {
		return zerr.With(err, "path", path)
	}
	return nil
}

func compare(expected, actual string) error {
	if strings.EqualFold(strings.TrimSpace(expected), actual) {
		return nil
	}
	err := zerr.With(domain.ErrChecksumMismatch, "expected", expected)
	return zerr.With(err, "actual", actual)
}
