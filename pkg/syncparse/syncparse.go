// Package syncparse provides the public API for decoding browser sync-state
// databases. It exposes search and decoding while keeping the row source,
// classifiers and aggregator internal.
//
// Example:
//
//	paths, err := syncparse.FindDatabases("/mnt/image")
//	if err != nil && !errors.Is(err, types.ErrNoDatabasesFound) {
//	    return err
//	}
//	for _, r := range syncparse.ParseAll(paths, 4, time.Local) {
//	    if r.Err != nil {
//	        continue
//	    }
//	    fmt.Println(r.Artifacts.Accounts)
//	}
package syncparse

import (
	"time"

	"github.com/spf13/afero"

	"github.com/mesh-intelligence/syncparse/internal/locate"
	"github.com/mesh-intelligence/syncparse/internal/scan"
	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// FindDatabases returns the sync-state databases found in the default
// browser profile locations under root.
func FindDatabases(root string) ([]string, error) {
	return locate.Search(afero.NewOsFs(), root)
}

// ParseDatabase decodes one database. Timestamps are converted to loc;
// a nil loc means UTC. Failures are reported in the result's Err.
func ParseDatabase(path string, loc *time.Location) types.ScanResult {
	return scan.New(scan.WithLocation(location(loc))).Database(path)
}

// ParseAll decodes databases concurrently, at most workers at a time, and
// returns results in the order of paths.
func ParseAll(paths []string, workers int, loc *time.Location) []types.ScanResult {
	return scan.New(scan.WithWorkers(workers), scan.WithLocation(location(loc))).All(paths)
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
