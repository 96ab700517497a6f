package standalone

import (
	"archive/tar"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extract unpacks a .tar.zst, .tar.gz or .tgz distribution archive into destDir.
func Extract(archivePath, destDir string) error {
	f, err := os.Open(archivePath) //nolint:gosec // archive was fetched and verified by the caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", archivePath)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	r, closeFn, err := decompressor(archivePath, f)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := os.MkdirAll(destDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create extraction directory"), "path", destDir)
	}

	if err := extractTar(tar.NewReader(r), destDir); err != nil {
		return zerr.With(err, "archive", archivePath)
	}
	return nil
}

func decompressor(name string, r io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(name, ".tar.zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", name)
		}
		return dec, dec.Close, nil
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		dec, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", name)
		}
		return dec, func() { _ = dec.Close() }, nil
	case strings.HasSuffix(name, ".tar"):
		return r, func() {}, nil
	default:
		return nil, nil, zerr.With(domain.ErrUnsupportedArchive, "path", name)
	}
}

func extractTar(tr *tar.Reader, destDir string) error {
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrArchiveReadFailed.Error())
		}

		target, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := linkInside(destDir, target, hdr.Linkname); err != nil {
				return err
			}
		case tar.TypeLink:
			source, err := safeJoin(destDir, hdr.Linkname)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
			}
			if err := os.Link(source, target); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create hard link"), "path", target)
			}
		default:
			// Devices and fifos never appear in a distribution.
		}
	}
}

func writeFile(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
	}
	if perm == 0 {
		perm = domain.FilePerm
	}

	//nolint:gosec // target was checked by safeJoin
	f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", target)
	}
	//nolint:gosec // archive size is bounded by the verified download
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", target)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", target)
	}
	return nil
}

func linkInside(root, target, linkname string) error {
	resolved := linkname
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(target), linkname)
	}
	if !within(root, resolved) {
		return zerr.With(zerr.With(domain.ErrUnsafeArchivePath, "path", target), "link", linkname)
	}
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
	}
	_ = os.Remove(target)
	if err := os.Symlink(linkname, target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create symlink"), "path", target)
	}
	return nil
}

func safeJoin(root, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "path", name)
	}
	target := filepath.Join(root, name)
	if !within(root, target) {
		return "", zerr.With(domain.ErrUnsafeArchivePath, "path", name)
	}
	return target, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
