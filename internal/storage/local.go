package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps blobs on disk; used in development and tests.
type LocalStore struct {
	root          string
	publicBaseURL string
}

func NewLocalStore(root, publicBaseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStore{root: root, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (s *LocalStore) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	if clean == "/" {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *LocalStore) Upload(ctx context.Context, path string, body io.Reader, contentType string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(full); err == nil {
		return fmt.Errorf("object %q already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *LocalStore) PublicURL(path string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}

func (s *LocalStore) Remove(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		full, err := s.resolve(p)
		if err != nil {
			return err
		}
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Root is served as static files when the local driver is active.
func (s *LocalStore) Root() string { return s.root }
