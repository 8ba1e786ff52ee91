// Package fsutil contains file helpers shared by io packages.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
)

// WriteFile writes data to a temporary file next to path and then renames
// it to path. If anything fails, an existing file at path stays intact.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := gnsys.MakeDir(dir); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
