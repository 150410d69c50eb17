// Package scan discovers candidate photos in the inbox directory.
package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"reelname/internal/services"
)

// Photo describes one image file discovered in the inbox. The scan only
// stats entries; file contents are read later by the pipeline.
type Photo struct {
	Path string
	Name string
	Ext  string // lowercase, including the dot
	Size int64
}

// imageExts is the case-insensitive allow-list of photo extensions.
var imageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".heic": {},
	".heif": {},
}

// Photos lists the image files directly inside dir, sorted by name for
// deterministic runs. Subdirectories and non-image files are ignored. A
// missing directory is a startup error; an empty one yields an empty slice.
func Photos(dir string) ([]Photo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "read inbox", dir, err)
		}
		return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "read inbox", "", err)
	}

	photos := make([]Photo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := imageExts[ext]; !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and stat; treat like a non-match.
			continue
		}
		photos = append(photos, Photo{
			Path: filepath.Join(dir, name),
			Name: name,
			Ext:  ext,
			Size: info.Size(),
		})
	}

	sort.Slice(photos, func(i, j int) bool { return photos[i].Name < photos[j].Name })
	return photos, nil
}
