package fileops

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"file-man/internal/lister"
)

// Archive writes the given files into a single zip archive under destDir,
// creating destDir if needed. The archive is named after the files' parent
// directory; an existing archive of that name is never overwritten (a
// numeric suffix is appended instead). Returns the archive path and its
// final size. On any failure the partial archive is removed and nothing
// else is touched.
func Archive(destDir string, files []lister.Entry) (string, int64, error) {
	if len(files) == 0 {
		return "", 0, errors.New("no files to archive")
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", 0, err
	}

	base := filepath.Base(filepath.Dir(files[0].Path))
	dest := nextAvailable(filepath.Join(destDir, base+"-backup.zip"))

	size, err := zipFiles(dest, files)
	if err != nil {
		_ = os.Remove(dest)
		return "", 0, err
	}
	return dest, size, nil
}

func zipFiles(dest string, files []lister.Entry) (int64, error) {
	f, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	for _, file := range files {
		info, err := os.Stat(file.Path)
		if err != nil {
			return 0, err
		}
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return 0, err
		}
		hdr.Name = file.Name
		hdr.Method = zip.Deflate

		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return 0, err
		}
		rf, err := os.Open(file.Path)
		if err != nil {
			return 0, err
		}
		if _, err := io.Copy(w, rf); err != nil {
			rf.Close()
			return 0, err
		}
		rf.Close()
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	if err := f.Sync(); err != nil {
		return 0, err
	}
	st, err := os.Stat(dest)
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

func nextAvailable(p string) string {
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return p
	}
	dir := filepath.Dir(p)
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	for i := 1; i < 10000; i++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s-%d%s", name, i, ext))
		if _, err := os.Stat(cand); errors.Is(err, fs.ErrNotExist) {
			return cand
		}
	}
	return p
}
