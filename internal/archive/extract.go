package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks a ChatWise export zip into a fresh temp directory and
// returns the directory holding the export contents. Archives that wrap
// everything in a single top-level folder resolve to that folder.
func Extract(zipPath string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	dest, err := os.MkdirTemp("", "cwimport-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	for _, f := range r.File {
		if err := extractFile(f, dest); err != nil {
			return "", fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}

	return exportRoot(dest)
}

func extractFile(f *zip.File, dest string) error {
	target := filepath.Join(dest, f.Name)
	// Reject entries that escape the extraction root.
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal path %q", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// exportRoot descends into the single wrapping subdirectory when the archive
// contains exactly one, otherwise returns the extraction root itself. Loose
// files next to the subdirectory do not count.
func exportRoot(dest string) (string, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		return "", fmt.Errorf("read extracted dir: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) == 1 {
		return filepath.Join(dest, dirs[0]), nil
	}
	return dest, nil
}
