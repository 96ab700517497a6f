// Package fs provides file system adapters for discovering and hashing Python resources.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every directory and file under root in lexical order, root
// excluded. Version control directories, __pycache__ and packaging metadata
// directories are skipped. A walk error ends the sequence with a non-nil error.
func (w *Walker) Walk(root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}
			if d.IsDir() && skipDir(d.Name()) {
				return filepath.SkipDir
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !yield(Entry{Path: path, Rel: filepath.ToSlash(rel), Dir: d.IsDir()}, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(Entry{}, err)
		}
	}
}

// Entry is a filesystem entry found by Walk.
type Entry struct {
	Path string
	// Rel is Path relative to the walk root, slash separated.
	Rel string
	Dir bool
}

func skipDir(name string) bool {
	switch name {
	case ".git", ".jj", "__pycache__":
		return true
	}
	return strings.HasSuffix(name, ".dist-info") || strings.HasSuffix(name, ".egg-info")
}
