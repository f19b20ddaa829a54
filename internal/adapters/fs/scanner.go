// Package fs provides the file system adapter that discovers source files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Scanner implements ports.SourceScanner on the local file system.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Discover lists the regular files directly inside dir whose name ends with ext.
// Each path is dir joined to the entry name with the host separator, unless
// dir already ends with one. Subdirectories are not entered.
func (s *Scanner) Discover(dir, ext string) ([]string, error) {
	if dir == "" {
		return nil, zerr.With(domain.ErrSourceDiscoveryFailed, "dir", dir)
	}
	if ext == "" {
		ext = domain.DefaultSourceExtension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDiscoveryFailed.Error()), "dir", dir)
	}

	prefix := dir
	if !strings.HasSuffix(prefix, "/") && !strings.HasSuffix(prefix, `\`) {
		prefix += string(filepath.Separator)
	}

	var files []string
	for name := range sources(dir, entries, ext) {
		files = append(files, prefix+name)
	}
	return files, nil
}

// sources yields the names of the entries that are source files.
func sources(dir string, entries []fs.DirEntry, ext string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range entries {
			if !matches(e.Name(), ext) || !isRegular(dir, e) {
				continue
			}
			if !yield(e.Name()) {
				return
			}
		}
	}
}

// matches reports whether name has the extension and a non-empty base name.
func matches(name, ext string) bool {
	return len(name) > len(ext) && strings.HasSuffix(name, ext)
}

func isRegular(dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}
