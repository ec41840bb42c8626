package discovery

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Locator finds where a conventionally named file actually lives inside a
// project. Conventional directories such as test/unit may be nested one or
// more levels deeper than expected.
type Locator struct {
	skipDirs map[string]bool
}

// NewLocator creates a Locator that does not descend into skipDirs
func NewLocator(skipDirs []string) *Locator {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Locator{skipDirs: skipMap}
}

// Locate walks baseDir looking for a directory whose path ends with the
// directory part of relPath and which contains its base name. The first
// match, relative to baseDir and slash separated, is returned. If nothing
// matches, relPath is returned unchanged.
//
// Matches are visited in lexical walk order. Well-formed projects are
// assumed to have a single match.
func (l *Locator) Locate(baseDir, relPath string) string {
	rel := filepath.ToSlash(relPath)
	name := path.Base(rel)
	parent := path.Dir(rel)
	if parent == "." {
		parent = ""
	}

	root := filepath.Clean(baseDir)
	found := ""

	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, resolution never fails
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != root {
			dirName := d.Name()
			if strings.HasPrefix(dirName, ".") || l.skipDirs[dirName] {
				return filepath.SkipDir
			}
		}

		if !hasDirSuffix(filepath.ToSlash(p), parent) {
			return nil
		}
		info, err := os.Stat(filepath.Join(p, name))
		if err != nil || info.IsDir() {
			return nil
		}

		relDir, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		found = path.Join(filepath.ToSlash(relDir), name)
		return fs.SkipAll
	})

	if found == "" {
		return relPath
	}
	return found
}

// Exists reports whether relPath names a regular file under baseDir.
func (l *Locator) Exists(baseDir, relPath string) bool {
	info, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(relPath)))
	return err == nil && info.Mode().IsRegular()
}

// hasDirSuffix reports whether dir ends with the path components of suffix.
func hasDirSuffix(dir, suffix string) bool {
	if suffix == "" {
		return true
	}
	return dir == suffix || strings.HasSuffix(dir, "/"+suffix)
}
