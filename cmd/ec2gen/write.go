package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/yairfalse/ec2model/internal/codegen"
)

// writeFiles writes files under root, skipping those already up to date,
// and returns how many it wrote.
func writeFiles(root string, files []codegen.File) (int, error) {
	var written int
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f.Path))

		current, err := os.ReadFile(path) // #nosec G304 -- path is built from the generator's own file list
		if err == nil && bytes.Equal(current, f.Content) {
			log.Debug().Str("file", f.Path).Msg("unchanged")
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil { // #nosec G306 -- generated source is world readable
			return written, fmt.Errorf("write %s: %w", f.Path, err)
		}
		log.Debug().Str("file", f.Path).Msg("written")
		written++
	}
	return written, nil
}

// checkFiles returns the paths under root that are missing or differ from
// the rendered content.
func checkFiles(root string, files []codegen.File) ([]string, error) {
	var stale []string
	for _, f := range files {
		current, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path))) // #nosec G304
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, f.Path)
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", f.Path, err)
		case !bytes.Equal(current, f.Content):
			stale = append(stale, f.Path)
		}
	}
	return stale, nil
}
