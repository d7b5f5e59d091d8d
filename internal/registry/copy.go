package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/platform"
)

// Destination maps a registry-relative file path to its absolute target path.
type Destination func(rel string) string

// DirDestination places every file under dir, keeping its relative path.
func DirDestination(dir string) Destination {
	return func(rel string) string {
		return filepath.Join(dir, filepath.FromSlash(rel))
	}
}

// CopyOptions controls CopyComponentFiles.
type CopyOptions struct {
	// Strict turns a missing source file into an error instead of a skip.
	Strict bool
	// Transform, when set, rewrites file contents before they are written.
	Transform func(rel string, data []byte) []byte
}

// CopyResult lists what CopyComponentFiles did, in file order.
type CopyResult struct {
	Written []string // absolute destination paths
	Skipped []string // relative source paths that did not exist
}

// ValidFilePath reports whether rel is a registry file path that stays inside
// the registry root once cleaned.
func ValidFilePath(rel string) bool {
	clean := path.Clean(rel)
	return clean != "." && fs.ValidPath(clean)
}

// CopyComponentFiles copies each relative path from src to dest. Missing
// intermediate directories are created and existing destinations overwritten.
// Sources that do not exist are skipped unless opts.Strict is set. A path that
// leaves the registry root is always an error.
func CopyComponentFiles(src fs.FS, dest Destination, files []string, opts CopyOptions) (*CopyResult, error) {
	result := &CopyResult{}
	for _, rel := range files {
		if !ValidFilePath(rel) {
			return result, fmt.Errorf("invalid registry file path %q", rel)
		}
		data, err := fs.ReadFile(src, path.Clean(rel))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if opts.Strict {
					return result, fmt.Errorf("source file %s not found", rel)
				}
				log.Debug("skipping missing source file", "file", rel)
				result.Skipped = append(result.Skipped, rel)
				continue
			}
			return result, fmt.Errorf("reading %s: %w", rel, err)
		}

		if opts.Transform != nil {
			data = opts.Transform(rel, data)
		}

		target := dest(rel)
		if err := platform.WriteFileAtomic(target, data, 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", target, err)
		}
		log.Debug("copied component file", "file", rel, "to", target)
		result.Written = append(result.Written, target)
	}
	return result, nil
}
