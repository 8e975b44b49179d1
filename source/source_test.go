package source

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestZip creates a ZIP archive with the given name->content entries.
func writeTestZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func TestOpenZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	writeTestZip(t, path, map[string]string{
		"proj/page/0001.xml":  "<xml/>",
		"proj/images/img.jpg": "jpegdata",
	})

	src, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	if got := len(src.Files()); got != 2 {
		t.Errorf("Files() returned %d entries, want 2", got)
	}

	data, err := src.Read("proj/page/0001.xml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "<xml/>" {
		t.Errorf("Read content = %q", data)
	}

	if _, err := src.Read("missing.xml"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read missing = %v, want ErrNotFound", err)
	}
}

func TestOpenDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "proj", "page"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "proj", "page", "0001.xml"), []byte("<xml/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Open(root)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer src.Close()

	files := src.Files()
	if len(files) != 1 || files[0] != "proj/page/0001.xml" {
		t.Errorf("Files() = %v", files)
	}

	data, err := src.Read("proj/page/0001.xml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "<xml/>" {
		t.Errorf("Read content = %q", data)
	}
}

func TestOpenRejectsNonZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notazip.zip")
	if err := os.WriteFile(path, []byte("plain text, wrong magic"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Open = %v, want ErrUnsupported", err)
	}
}

func TestOpenMissingPath(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}
