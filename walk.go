package main

import (
	"io/fs"
	"log/slog"
	"path/filepath"
)

// markdownFiles enumerates every .md file under root, recursively,
// skipping version-control metadata directories. Unreadable subtrees
// below root are logged and skipped so one bad directory cannot sink
// the run.
func markdownFiles(root string, logger *slog.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".md" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
