// Package backup copies originals into the backup subdirectory before they
// are renamed, optionally verifying each copy by content hash.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// ErrVerifyMismatch is returned when a copy's hash differs from its source.
var ErrVerifyMismatch = errors.New("backup copy does not match original")

// Copier writes byte-for-byte copies of files into a backup directory.
type Copier struct {
	Fs     afero.Fs
	Verify bool // Hash source and copy after writing.
}

// New returns a Copier on fsys.
func New(fsys afero.Fs, verify bool) *Copier {
	return &Copier{Fs: fsys, Verify: verify}
}

// EnsureDir creates dir if it does not exist. An existing directory is
// reused as is, including whatever it already contains. created reports
// whether this call made the directory.
func (c *Copier) EnsureDir(dir string) (created bool, err error) {
	fi, err := c.Fs.Stat(dir)
	switch {
	case err == nil && fi.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("backup path %s exists and is not a directory", dir)
	case !os.IsNotExist(err):
		return false, fmt.Errorf("stat backup dir: %w", err)
	}
	if err := c.Fs.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create backup dir: %w", err)
	}
	return true, nil
}

// Copy copies src into dstDir under src's base name and returns the number
// of bytes written. An existing entry with that name is overwritten. The
// copy keeps the source's permission bits.
func (c *Copier) Copy(src, dstDir string) (int64, error) {
	dst := filepath.Join(dstDir, filepath.Base(src))

	in, err := c.Fs.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}

	out, err := c.Fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fi.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("create backup: %w", err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("copy content: %w", err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("close backup: %w", err)
	}

	if c.Verify {
		if err := c.verify(src, dst); err != nil {
			return n, err
		}
	}
	return n, nil
}

// verify compares the xxhash digests of a and b.
func (c *Copier) verify(a, b string) error {
	ha, err := c.Sum(a)
	if err != nil {
		return err
	}
	hb, err := c.Sum(b)
	if err != nil {
		return err
	}
	if ha != hb {
		return fmt.Errorf("%w: %s (%016x != %016x)", ErrVerifyMismatch, filepath.Base(a), ha, hb)
	}
	return nil
}

// Sum returns the xxhash64 digest of the file at path.
func (c *Copier) Sum(path string) (uint64, error) {
	f, err := c.Fs.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open for hash: %w", err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return h.Sum64(), nil
}
