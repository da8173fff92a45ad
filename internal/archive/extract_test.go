package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestExtract_WrappedInSingleDir(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"chatwise-export/chatwise-export-verison.txt": "1",
		"chatwise-export/chat-1.json":                 `{"id": "1"}`,
	})

	dir, err := Extract(zipPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Extraction should land inside the wrapping folder.
	if filepath.Base(dir) != "chatwise-export" {
		t.Errorf("expected wrapper dir, got %s", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "chat-1.json")); err != nil {
		t.Errorf("chat file not extracted: %v", err)
	}
}

func TestExtract_FlatArchive(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"chatwise-export-verison.txt": "1",
		"chat-1.json":                 `{"id": "1"}`,
		"chat-2.json":                 `{"id": "2"}`,
	})

	dir, err := Extract(zipPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "chat-2.json")); err != nil {
		t.Errorf("chat file not extracted at root: %v", err)
	}
}

func TestExtract_MultipleTopLevelDirs(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"one/a.json": `{}`,
		"two/b.json": `{}`,
	})

	dir, err := Extract(zipPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "one", "a.json")); err != nil {
		t.Errorf("expected extraction root with both subdirs: %v", err)
	}
}

func TestExtract_RejectsPathTraversal(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"../escape.txt": "bad",
	})

	if _, err := Extract(zipPath); err == nil {
		t.Fatal("expected error for entry escaping the extraction root")
	}
}

func TestExtract_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	if err := os.WriteFile(path, []byte("this is not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Extract(path); err == nil {
		t.Fatal("expected error for invalid archive")
	}
}

func buildZip(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, body := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
