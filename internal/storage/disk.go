package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists uploaded image files. Implementations map a stored name
// to a file; URL construction is left to the caller.
type FileStore interface {
	Save(name string, r io.Reader) error
	// Remove deletes a stored file. A file that is already gone is not an
	// error; uploads and DB records are not transactional with each other.
	Remove(name string) error
}

// DiskStore keeps files in a single directory on local disk.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *DiskStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
