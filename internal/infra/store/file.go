package store

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"storefront-engine/internal/infra"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var ErrInvalidKey = errors.New("invalid store key")

// FileStore keeps one JSON document per key under dir. Save replaces the
// whole document through a rename, so readers never see a partial write.
type FileStore struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindIOFailure, "", "failed to create store directory", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) Load(key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, key, "no stored value", nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, key, "failed to read stored value", err)
	}
	return data, nil
}

func (s *FileStore) Save(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, key, "failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, key, "failed to write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, key, "failed to close temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, key, "failed to replace stored value", err)
	}
	return nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, key+".json"), nil
}
