// README: History store contract and the flat-file JSON backend.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists complete per-user histories.
// Load must return an empty, non-nil slice when nothing is stored for user.
type Store interface {
	Load(ctx context.Context, user string) ([]Record, error)
	Save(ctx context.Context, user string, records []Record) error
}

// KeyChecker is implemented by stores whose key derivation can reject a name
// that passes the generic non-blank check.
type KeyChecker interface {
	CheckKey(user string) error
}

const fileSuffix = "_history.json"

// FileStore keeps one pretty-printed JSON array per user in dir.
type FileStore struct {
	dir string
	key KeyFunc
}

// NewFileStore creates dir if needed. With legacy set, files are named after
// the raw user name as older deployments wrote them.
func NewFileStore(dir string, legacy bool) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure dir %s: %w", ErrStorage, dir, err)
	}
	key := Key
	if legacy {
		key = LegacyKey
	}
	return &FileStore{dir: dir, key: key}, nil
}

// Path returns the file that holds user's history.
func (s *FileStore) Path(user string) (string, error) {
	k, err := s.key(user)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, k+fileSuffix), nil
}

func (s *FileStore) CheckKey(user string) error {
	_, err := s.key(user)
	return err
}

func (s *FileStore) Load(_ context.Context, user string) ([]Record, error) {
	path, err := s.Path(user)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorage, path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrStorage, path, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers see either the old or the new history.
func (s *FileStore) Save(_ context.Context, user string, records []Record) error {
	path, err := s.Path(user)
	if err != nil {
		return err
	}
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrStorage, tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: sync %s: %w", ErrStorage, tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrStorage, tmpName, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrStorage, tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename to %s: %w", ErrStorage, path, err)
	}
	return nil
}
