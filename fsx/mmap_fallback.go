//go:build !unix

package fsx

import (
	"fmt"
	"os"
)

// Map reads the file at path into memory on platforms without mmap support.
// The contract matches the unix build: contents plus a release function,
// though here release only drops the reference.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("fsx: map %s: %w", path, err)
	}
	return data, func() error { return nil }, nil
}
