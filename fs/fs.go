// Package fs provides filesystem implementations of source discovery,
// asset storage and record output.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxCollisions bounds the search for a free "_N" suffixed name.
const maxCollisions = 10000

// createUnique creates a new file in dir named name, or name with a "_N"
// suffix before the extension when name is taken. It returns the open file.
func createUnique(dir, name string) (*os.File, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for n := 1; n <= maxCollisions; n++ {
		f, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, err
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
	return nil, fmt.Errorf("no free name for %q in %s", name, dir)
}

// writeUnique writes data to a new uniquely named file and returns its path.
func writeUnique(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	f, err := createUnique(dir, name)
	if err != nil {
		return "", err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
