package slot

import (
	"os"
	"path/filepath"
)

// writeBackup writes blob to path with owner-only permissions, creating
// the containing directory as needed. The bytes go to a temp file first
// and rename into place, so an interrupted write never leaves a
// truncated backup behind.
func writeBackup(path string, blob []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	// MkdirAll leaves a pre-existing directory's mode alone.
	if err := os.Chmod(dir, 0700); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
