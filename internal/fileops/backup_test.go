package fileops

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"file-man/internal/lister"
)

func TestArchive(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "docs")
	if err := os.Mkdir(srcDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := []lister.Entry{
		writeFile(t, filepath.Join(srcDir, "a.txt"), "alpha"),
		writeFile(t, filepath.Join(srcDir, "b.txt"), "bravo"),
	}
	backupDir := filepath.Join(root, "backups")

	dest, size, err := Archive(backupDir, files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(dest) != "docs-backup.zip" {
		t.Fatalf("unexpected archive name: %s", dest)
	}
	if size <= 0 {
		t.Fatalf("archive size = %d", size)
	}

	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 archive entries, got %d", len(zr.File))
	}
	want := map[string]string{"a.txt": "alpha", "b.txt": "bravo"}
	for _, zf := range zr.File {
		content, ok := want[zf.Name]
		if !ok {
			t.Fatalf("unexpected entry %q", zf.Name)
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("open entry %q: %v", zf.Name, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil || string(got) != content {
			t.Fatalf("entry %q content = %q, %v", zf.Name, got, err)
		}
	}

	// sources are untouched
	for _, f := range files {
		if _, err := os.Stat(f.Path); err != nil {
			t.Fatalf("source %s should be untouched: %v", f.Name, err)
		}
	}
}

func TestArchiveNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "docs")
	if err := os.Mkdir(srcDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := []lister.Entry{writeFile(t, filepath.Join(srcDir, "a.txt"), "x")}
	backupDir := filepath.Join(root, "backups")

	first, _, err := Archive(backupDir, files)
	if err != nil {
		t.Fatalf("first archive: %v", err)
	}
	second, _, err := Archive(backupDir, files)
	if err != nil {
		t.Fatalf("second archive: %v", err)
	}
	if first == second {
		t.Fatalf("second archive reused %s", first)
	}
	if filepath.Base(second) != "docs-backup-1.zip" {
		t.Fatalf("unexpected suffixed name: %s", second)
	}
}

func TestArchiveFailureCleansUp(t *testing.T) {
	root := t.TempDir()
	backupDir := filepath.Join(root, "backups")
	missing := []lister.Entry{{Name: "gone", Path: filepath.Join(root, "gone")}}

	if _, _, err := Archive(backupDir, missing); err == nil {
		t.Fatal("expected an error for a missing source")
	}
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("partial archive left behind: %v", entries)
	}
}
