// Package storage implements the image store. The disk store serves a single
// instance; a cloud object store can replace it behind the same port.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore writes uploads under a local directory and returns URLs beneath
// a public base path (served as static files by the router).
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore ensures dir exists. baseURL is the public prefix, e.g.
// "/uploads".
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save stores the content under a fresh uuid name, keeping only the original
// extension so client-supplied names never touch the filesystem.
func (s *DiskStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Remove deletes a previously stored file. URLs outside the store's base
// path are ignored.
func (s *DiskStore) Remove(_ context.Context, url string) error {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return nil
	}
	name := path.Base(url)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Dir exposes the backing directory so the router can serve it statically.
func (s *DiskStore) Dir() string {
	return s.dir
}
