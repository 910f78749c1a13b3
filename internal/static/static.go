// Package static embeds the exercise catalog and the sample routines into the
// binary and copies the routines to the filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/homegym/spotter/internal/osutil"
)

const (
	filesDir    = "files"
	catalogFile = "catalog.yaml"
	routinesDir = "routines"
)

//go:embed files/*
var embeddedFiles embed.FS

// Catalog returns the embedded exercise catalog.
func Catalog() ([]byte, error) {
	return embeddedFiles.ReadFile(path.Join(filesDir, catalogFile))
}

// SampleRoutines returns the embedded routine files keyed by file name.
func SampleRoutines() (map[string][]byte, error) {
	root := path.Join(filesDir, routinesDir)

	entries, err := embeddedFiles.ReadDir(root)
	if err != nil {
		return nil, err
	}

	routines := make(map[string][]byte, len(entries))

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		b, err := embeddedFiles.ReadFile(path.Join(root, e.Name()))
		if err != nil {
			return nil, err
		}

		routines[e.Name()] = b
	}

	return routines, nil
}

// Install copies the sample routines into the data directory named dir. Files
// that already exist are left alone. The paths of the written files are
// returned.
func Install(dir string) ([]string, error) {
	var written []string

	err := fs.WalkDir(
		embeddedFiles,
		path.Join(filesDir, routinesDir),
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, filesDir+"/")

			destPath, err := xdg.DataFile(filepath.Join(dir, filepath.FromSlash(stripped)))
			if err != nil {
				return err
			}

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); !errors.Is(err, os.ErrNotExist) {
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
				return err
			}

			written = append(written, destPath)

			return nil
		},
	)

	return written, err
}
