package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reelname/internal/services"
)

func TestPhotosFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"zz_last.jpg",
		"IMG_0002.HEIC",
		"IMG_0001.JPG",
		"cover.webp",
		"notes.txt",
		"movie.mkv",
		"animation.gif",
	} {
		writeFile(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	photos, err := Photos(dir)
	if err != nil {
		t.Fatalf("Photos() error: %v", err)
	}

	wantNames := []string{"IMG_0001.JPG", "IMG_0002.HEIC", "animation.gif", "cover.webp", "zz_last.jpg"}
	if len(photos) != len(wantNames) {
		t.Fatalf("Photos() returned %d entries, want %d: %+v", len(photos), len(wantNames), photos)
	}
	for i, want := range wantNames {
		if photos[i].Name != want {
			t.Errorf("photos[%d].Name = %q, want %q", i, photos[i].Name, want)
		}
	}

	if photos[1].Ext != ".heic" {
		t.Errorf("Ext = %q, want lowercase .heic", photos[1].Ext)
	}
	if photos[0].Path != filepath.Join(dir, "IMG_0001.JPG") {
		t.Errorf("Path = %q", photos[0].Path)
	}
}

func TestPhotosEmptyDirectory(t *testing.T) {
	photos, err := Photos(t.TempDir())
	if err != nil {
		t.Fatalf("Photos() error: %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("Photos() = %+v, want empty", photos)
	}
}

func TestPhotosMissingDirectory(t *testing.T) {
	_, err := Photos(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("Photos() expected error for missing directory")
	}
	if !errors.Is(err, services.ErrDirectoryNotFound) {
		t.Errorf("Photos() error = %v, want ErrDirectoryNotFound", err)
	}
	if !services.IsFatal(err) {
		t.Errorf("missing inbox should be fatal: %v", err)
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}
