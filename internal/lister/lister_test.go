package lister

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFileOfSize(t *testing.T, path string, size int64) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		t.Fatalf("truncate %s: %v", path, err)
	}
}

func TestFilesAndDirs(t *testing.T) {
	root := t.TempDir()
	writeFileOfSize(t, filepath.Join(root, "b.txt"), 2048)
	writeFileOfSize(t, filepath.Join(root, "a.txt"), 1024)
	for _, d := range []string{"zeta", "alpha"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	files, err := Files(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "a.txt" || files[1].Name != "b.txt" {
		t.Fatalf("files not sorted by name: %v", files)
	}
	if files[0].Size != 1024 || files[1].Size != 2048 {
		t.Fatalf("unexpected sizes: %v", files)
	}
	if files[0].IsDir || files[1].IsDir {
		t.Fatalf("files reported as directories: %v", files)
	}

	dirs, err := Dirs(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirs) != 2 {
		t.Fatalf("expected 2 dirs, got %d", len(dirs))
	}
	if dirs[0].Name != "alpha" || dirs[1].Name != "zeta" {
		t.Fatalf("dirs not sorted by name: %v", dirs)
	}
	if dirs[0].Path != filepath.Join(root, "alpha") {
		t.Fatalf("unexpected dir path: %s", dirs[0].Path)
	}
}

func TestExcludesSymlinks(t *testing.T) {
	root := t.TempDir()
	real := filepath.Join(root, "real.txt")
	writeFileOfSize(t, real, 10)
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(real, filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(sub, filepath.Join(root, "sublink")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	files, err := Files(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].Name != "real.txt" {
		t.Fatalf("expected only the real file, got %v", files)
	}

	dirs, err := Dirs(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirs) != 1 || dirs[0].Name != "sub" {
		t.Fatalf("expected only the real dir, got %v", dirs)
	}
}

func TestMissingPath(t *testing.T) {
	root := t.TempDir()
	files, err := Files(filepath.Join(root, "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
	if len(files) != 0 {
		t.Fatalf("expected no entries, got %v", files)
	}
	dirs, err := Dirs(filepath.Join(root, "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
	if len(dirs) != 0 {
		t.Fatalf("expected no entries, got %v", dirs)
	}
}
