// Package locate validates database paths and finds sync-state databases
// under a filesystem root, such as a mounted evidence image.
package locate

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// DatabaseFileName is the sync-state database inside a browser profile.
const DatabaseFileName = "SyncData.sqlite3"

// profileSuffix is the part of a match below the profile directory.
var profileSuffix = filepath.Join("*", "Sync Data", DatabaseFileName)

// installLayouts lists, per platform, where browser profiles live relative
// to the root of a system volume. The first segment after the root is the
// users directory.
var installLayouts = []struct {
	platform string
	dirs     []string
}{
	{"windows", []string{"Users", "*", "AppData", "Local", "Google", "Chrome", "User Data"}},
	{"windows-xp", []string{"Documents and Settings", "*", "Local Settings", "Application Data", "Google", "Chrome", "User Data"}},
	{"darwin", []string{"Users", "*", "Library", "Application Support", "Google", "Chrome"}},
	{"linux", []string{"home", "*", ".config", "google-chrome"}},
	{"linux-chromium", []string{"home", "*", ".config", "chromium"}},
}

// Patterns returns the glob patterns searched under root. Besides full
// system volumes, root may be a single user's home directory.
func Patterns(root string) []string {
	var patterns []string
	for _, l := range installLayouts {
		patterns = append(patterns, filepath.Join(root, filepath.Join(l.dirs...), profileSuffix))
	}
	// Home-directory layouts drop the users directory and the user name.
	for _, l := range installLayouts {
		patterns = append(patterns, filepath.Join(root, filepath.Join(l.dirs[2:]...), profileSuffix))
	}
	return patterns
}

// Search returns every sync-state database under root, sorted and without
// duplicates. It returns ErrNoDatabasesFound when nothing matches.
// Directories are skipped; matches that cannot be read are still returned
// so that processing reports them.
func Search(fs afero.Fs, root string) ([]string, error) {
	var found []string
	for _, pattern := range Patterns(root) {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			if isDir(fs, m) {
				continue
			}
			found = append(found, m)
		}
	}

	slices.Sort(found)
	found = slices.Compact(found)
	if len(found) == 0 {
		return nil, fmt.Errorf("%w under %s", types.ErrNoDatabasesFound, root)
	}
	return found, nil
}

func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

// ValidateDatabase checks that path names a readable regular file. It is
// called before any database access.
func ValidateDatabase(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrPathInvalid, path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", types.ErrPathInvalid, path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s is not readable", types.ErrPathInvalid, path)
	}
	return f.Close()
}
