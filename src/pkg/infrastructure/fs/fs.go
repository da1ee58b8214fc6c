// Package fs holds small filesystem helpers shared by the installer stages.
package fs

import (
	"io"
	"os"
	"path/filepath"
)

func EnsureDir(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

func EnsureDirForFile(path string, perm os.FileMode) error {
	return EnsureDir(filepath.Dir(path), perm)
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFromReaderAtomic streams r into path via a temporary file in the same
// directory followed by a rename, so a failed write never leaves a partial
// file at path.
func WriteFromReaderAtomic(path string, r io.Reader, dirPerm, filePerm os.FileMode) error {
	if err := EnsureDirForFile(path, dirPerm); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	cleanup := func() {
		_ = os.Remove(tmp)
	}
	if err := f.Chmod(PermFileTemp); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		cleanup()
		return err
	}
	return os.Chmod(path, filePerm)
}
