package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"file-man/internal/lister"
)

// Characters rejected in new file names.
const invalidNameChars = `<>:"/\|?*`

var (
	ErrInvalidName       = errors.New("name contains invalid characters")
	ErrDestinationExists = errors.New("destination already exists")
)

// ValidateName rejects names containing any reserved filename character.
func ValidateName(name string) error {
	if strings.ContainsAny(name, invalidNameChars) {
		return ErrInvalidName
	}
	return nil
}

// Rename renames e within its parent directory. It never overwrites: when
// anything already exists at the destination the rename is refused and the
// source is left untouched. Returns the destination path on success.
//
// The existence check races against concurrent filesystem changes; a loss
// there surfaces as the os.Rename error.
func Rename(e lister.Entry, newName string) (string, error) {
	if err := ValidateName(newName); err != nil {
		return "", err
	}
	dest := filepath.Join(filepath.Dir(e.Path), newName)
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, newName)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.Rename(e.Path, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Delete removes the given files in order and stops at the first failure:
// later files are not attempted. onDeleted, when non-nil, is called after
// each successful removal. Returns the number of files actually removed;
// the error is nil only when every file was removed.
func Delete(files []lister.Entry, onDeleted func(lister.Entry)) (int, error) {
	for i, f := range files {
		if err := os.Remove(f.Path); err != nil {
			return i, err
		}
		if onDeleted != nil {
			onDeleted(f)
		}
	}
	return len(files), nil
}

// TotalSize sums the listed sizes of the given files.
func TotalSize(files []lister.Entry) int64 {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total
}
