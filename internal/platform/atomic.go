package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// WriteFileAtomic writes data to a temp file next to target and renames it
// into place, creating missing parent directories first. target either keeps
// its previous contents or holds all of data.
func WriteFileAtomic(target string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		_ = os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	if err := setMode(tmpName, perm); err != nil {
		return cleanup(err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return cleanup(err)
	}
	return nil
}

// setMode is a no-op on Windows, which has no Unix permission bits.
func setMode(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
