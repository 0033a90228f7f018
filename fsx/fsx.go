// Package fsx carries file-system helpers over an afero.Fs, so every helper
// works identically against the real OS and an in-memory filesystem in
// tests, plus a read-only memory-mapping of real files.
//
// Each helper comes in two forms: one taking an explicit afero.Fs and an
// OS-filesystem convenience without the Fs parameter.
package fsx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

var osFs = afero.NewOsFs()

// Exists reports whether path exists on fs. Errors other than "not exist"
// report as false.
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// EnsureDir creates dir and any missing parents with 0755. It is a no-op
// when dir already exists.
func EnsureDir(fs afero.Fs, dir string) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fsx: ensure dir %s: %w", dir, err)
	}
	return nil
}

// CopyFile copies src to dst, creating dst's parent directories as needed.
// The destination keeps the source's permission bits; an existing dst is
// truncated.
func CopyFile(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("fsx: copy %s: %w", src, err)
	}
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("fsx: copy %s: %w", src, err)
	}
	if err := EnsureDir(fs, filepath.Dir(dst)); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, dst, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("fsx: copy to %s: %w", dst, err)
	}
	return nil
}

// AtomicWrite writes data to path so that readers never observe a partial
// file: the data goes to a temp file in the same directory, which is then
// renamed over path. On filesystems with atomic rename an existing file is
// replaced all-or-nothing.
func AtomicWrite(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(fs, dir); err != nil {
		return err
	}
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("fsx: atomic write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer fs.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("fsx: atomic write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fsx: atomic write %s: %w", path, err)
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("fsx: atomic write %s: %w", path, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fsx: atomic write %s: %w", path, err)
	}
	return nil
}

// Touch creates path as an empty file if absent, or updates its
// modification time to now if present.
func Touch(fs afero.Fs, path string) error {
	if Exists(fs, path) {
		now := time.Now()
		if err := fs.Chtimes(path, now, now); err != nil {
			return fmt.Errorf("fsx: touch %s: %w", path, err)
		}
		return nil
	}
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("fsx: touch %s: %w", path, err)
	}
	return f.Close()
}

// OS-filesystem conveniences.

// ExistsOS is Exists against the real filesystem.
func ExistsOS(path string) bool { return Exists(osFs, path) }

// EnsureDirOS is EnsureDir against the real filesystem.
func EnsureDirOS(dir string) error { return EnsureDir(osFs, dir) }

// CopyFileOS is CopyFile against the real filesystem.
func CopyFileOS(src, dst string) error { return CopyFile(osFs, src, dst) }

// AtomicWriteOS is AtomicWrite against the real filesystem.
func AtomicWriteOS(path string, data []byte, perm os.FileMode) error {
	return AtomicWrite(osFs, path, data, perm)
}

// TouchOS is Touch against the real filesystem.
func TouchOS(path string) error { return Touch(osFs, path) }
