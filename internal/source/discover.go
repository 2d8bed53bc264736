package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileEntry is one data file found by Discover.
type FileEntry struct {
	Path string
	Size int64
}

// DiscoverOptions filters directory discovery.
type DiscoverOptions struct {
	Recursive bool
	MinSize   int64
	MaxSize   int64
}

// Discover walks root and returns the files carrying the given extension,
// ordered by walk order. Non-recursive discovery stops at the first level.
func Discover(root, ext string, opts DiscoverOptions) ([]FileEntry, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}
	stat, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return nil, fmt.Errorf("file extension cannot be empty")
	}

	var files []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("access %s: %w", path, err)
		}
		if d.IsDir() {
			if path != root && !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), "."+ext) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("file info %s: %w", path, err)
		}
		if opts.MinSize > 0 && info.Size() < opts.MinSize {
			return nil
		}
		if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
			return nil
		}
		files = append(files, FileEntry{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
