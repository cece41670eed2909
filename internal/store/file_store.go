package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"genwallet/internal/wallet"
)

const walletFileName = "wallet.toml"

// ErrStoreNotFound is returned by Load when no wallet file exists yet.
// It is distinct from a present-but-broken store, which loads with a
// different error and is fatal for the caller.
var ErrStoreNotFound = errors.New("wallet store not found")

// FileStore reads and writes one wallet file under a store directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// WalletFile returns the path of the wallet file.
func (s *FileStore) WalletFile() string {
	return filepath.Join(s.dir, walletFileName)
}

// Load reads the wallet file. A missing file yields ErrStoreNotFound; a
// file that exists but cannot be decoded yields the decode failure.
func (s *FileStore) Load() (*wallet.Store, error) {
	data, err := os.ReadFile(s.WalletFile())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read wallet store: %w", err)
	}
	var file walletFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode wallet store: %w", err)
	}
	return decodeStore(file)
}

// LoadOrNew reads the wallet file, or returns an empty store when none
// exists yet.
func (s *FileStore) LoadOrNew() (*wallet.Store, error) {
	st, err := s.Load()
	if errors.Is(err, ErrStoreNotFound) {
		return wallet.NewStore(), nil
	}
	return st, err
}

// Save writes the store atomically with owner-only permissions.
func (s *FileStore) Save(st *wallet.Store) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(encodeStore(st)); err != nil {
		return fmt.Errorf("encode wallet store: %w", err)
	}
	path := s.WalletFile()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write wallet store: %w", err)
	}
	return os.Rename(tmp, path)
}
