package placement

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"reelname/internal/services"
)

// Placer writes output artifacts under collision-safe names. It assumes a
// single process; concurrent runs are excluded by the pipeline's run lock.
type Placer struct {
	ArchiveDir string
	RenamedDir string
}

// New constructs a Placer for the given archive and renamed directories.
func New(archiveDir, renamedDir string) *Placer {
	return &Placer{ArchiveDir: archiveDir, RenamedDir: renamedDir}
}

// Archive copies the original file's bytes into the archive directory under
// the derived title, keeping the source extension. The source is untouched.
func (p *Placer) Archive(srcPath, title string) (string, error) {
	target, err := resolvePath(p.ArchiveDir, title, filepath.Ext(srcPath))
	if err != nil {
		return "", services.Wrap(services.ErrPlacementFailed, "archive", "resolve name", "", err)
	}
	if err := copyFileContents(srcPath, target); err != nil {
		return "", services.Wrap(services.ErrPlacementFailed, "archive", "copy original", "", err)
	}
	return target, nil
}

// Finalize writes the normalized JPEG into the renamed directory under the
// derived title and then removes the source file. The source is only removed
// after the output is durably written, so a failure here never loses it.
func (p *Placer) Finalize(jpegData []byte, title, srcPath string) (string, error) {
	target, err := resolvePath(p.RenamedDir, title, ".jpg")
	if err != nil {
		return "", services.Wrap(services.ErrPlacementFailed, "finalize", "resolve name", "", err)
	}
	if err := writeFileSync(target, jpegData); err != nil {
		return "", services.Wrap(services.ErrPlacementFailed, "finalize", "write output", "", err)
	}
	if err := os.Remove(srcPath); err != nil {
		return "", services.Wrap(services.ErrPlacementFailed, "finalize", "consume source", "output written but source remains", err)
	}
	return target, nil
}

// resolvePath returns the first non-colliding path for base+ext in dir,
// appending _1, _2, ... until unused.
func resolvePath(dir, base, ext string) (string, error) {
	candidate := filepath.Join(dir, base+ext)
	counter := 1
	for {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat candidate: %w", err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
		counter++
	}
}

func copyFileContents(sourcePath, targetPath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dest, err := os.OpenFile(targetPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		os.Remove(targetPath)
		return fmt.Errorf("copy data: %w", err)
	}
	if err := dest.Sync(); err != nil {
		dest.Close()
		os.Remove(targetPath)
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(targetPath)
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}

func writeFileSync(path string, data []byte) error {
	dest, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := dest.Write(data); err != nil {
		dest.Close()
		os.Remove(path)
		return fmt.Errorf("write data: %w", err)
	}
	if err := dest.Sync(); err != nil {
		dest.Close()
		os.Remove(path)
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}
