// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// statsRoots are the source trees counted by Stats.
var statsRoots = []string{"cmd", "internal", "pkg"}

// pkgStats counts lines of one package directory.
type pkgStats struct {
	Prod    int `json:"prod"`
	Test    int `json:"test"`
	Goldens int `json:"goldens,omitempty"`
}

// Stats prints Go lines of code per package, split into production and
// test lines, plus golden files, as one JSON object.
func Stats() error {
	stats, err := collectStats(statsRoots)
	if err != nil {
		return err
	}
	line, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

// collectStats walks roots relative to the working directory. Missing
// roots are skipped.
func collectStats(roots []string) (map[string]*pkgStats, error) {
	stats := map[string]*pkgStats{}
	get := func(dir string) *pkgStats {
		if stats[dir] == nil {
			stats[dir] = &pkgStats{}
		}
		return stats[dir]
	}

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			dir := filepath.Dir(path)
			switch {
			case filepath.Ext(path) == ".golden":
				get(filepath.Dir(dir)).Goldens++
			case strings.HasSuffix(path, "_test.go"):
				n, err := countLines(path)
				if err != nil {
					return err
				}
				get(dir).Test += n
			case strings.HasSuffix(path, ".go"):
				n, err := countLines(path)
				if err != nil {
					return err
				}
				get(dir).Prod += n
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	return stats, nil
}

func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return bytes.Count(data, []byte("\n")), nil
}
