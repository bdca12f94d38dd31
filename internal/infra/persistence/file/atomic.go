package file

import (
	"os"
	"path/filepath"

	"paraquip/internal/errors"
)

// writeFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so a crash mid-write leaves either the old
// content or the new content, never a mix.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".write-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "write temp file")
	}

	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "rename temp file")
	}

	return nil
}
