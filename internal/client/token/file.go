package token

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const fileName = "token"

// FileStore persists the credential as a single file under dir, mode 0600.
// The file plays the role the browser's origin-scoped storage played for the
// web dashboard.
type FileStore struct {
	path string
}

// NewFileStore creates dir if needed and returns a store writing to
// dir/token.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, fileName)}, nil
}

func (f *FileStore) Set(token string) error {
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileStore) Remove() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileStore) Get() (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(data))
	if tok == "" {
		return "", false
	}
	return tok, true
}
