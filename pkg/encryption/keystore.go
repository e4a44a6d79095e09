package encryption

import (
	"bytes"
	"context"
	"embed"
	"errors"

	"github.com/dmitrymomot/sharedkit/pkg/dbutil"
)

// Migrations creates the encryption_keys table read by SQLKeyStore.
// Pass it to pg.Migrate with MigrationsPath set to "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

const (
	DefaultMasterKeyQuery = "SELECT key_value FROM encryption_keys WHERE key_name = $1"
	DefaultSaveKeyQuery   = "INSERT INTO encryption_keys (key_name, key_value) VALUES ($1, $2) " +
		"ON CONFLICT (key_name) DO UPDATE SET key_value = EXCLUDED.key_value"
)

// MemoryKeyStore serves a fixed master key.
type MemoryKeyStore struct {
	key []byte
}

// NewMemoryKeyStore copies key into a new store.
func NewMemoryKeyStore(key []byte) *MemoryKeyStore {
	return &MemoryKeyStore{key: bytes.Clone(key)}
}

func (s *MemoryKeyStore) MasterKey(context.Context) ([]byte, error) {
	if len(s.key) == 0 {
		return nil, ErrMasterKeyNotFound
	}
	return bytes.Clone(s.key), nil
}

// SQLKeyStore reads the master key from a database table.
// The key is stored as hex text or raw bytes. Drivers that return text
// columns as []byte are handled: a value that is the hex form of a 16, 24 or
// 32 byte key is decoded.
type SQLKeyStore struct {
	db        *dbutil.Utility
	name      string
	readQuery string
	saveQuery string
}

// SQLKeyStoreOption configures a SQLKeyStore.
type SQLKeyStoreOption func(*SQLKeyStore)

// WithQueries overrides the read and save statements. Both take the key name as
// the first positional argument; the save statement takes the hex key as the second.
func WithQueries(read, save string) SQLKeyStoreOption {
	return func(s *SQLKeyStore) {
		if read != "" {
			s.readQuery = read
		}
		if save != "" {
			s.saveQuery = save
		}
	}
}

// NewSQLKeyStore creates a store reading the key named name.
func NewSQLKeyStore(db *dbutil.Utility, name string, opts ...SQLKeyStoreOption) *SQLKeyStore {
	s := &SQLKeyStore{
		db:        db,
		name:      name,
		readQuery: DefaultMasterKeyQuery,
		saveQuery: DefaultSaveKeyQuery,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SQLKeyStore) MasterKey(ctx context.Context) ([]byte, error) {
	v, err := s.db.ExecuteScalar(ctx, s.readQuery, dbutil.NewParameterSet().Positional(s.name))
	if err != nil {
		if errors.Is(err, dbutil.ErrNoResult) {
			return nil, ErrMasterKeyNotFound
		}
		return nil, err
	}

	switch key := v.(type) {
	case nil:
		return nil, ErrMasterKeyNotFound
	case []byte:
		if len(key) == 0 {
			return nil, ErrMasterKeyNotFound
		}
		if isHexKey(key) {
			return HexToBytes(string(key))
		}
		return bytes.Clone(key), nil
	case string:
		if key == "" {
			return nil, ErrMasterKeyNotFound
		}
		return HexToBytes(key)
	default:
		return nil, ErrInvalidKey
	}
}

// SaveMasterKey stores key under the store's name as uppercase hex.
func (s *SQLKeyStore) SaveMasterKey(ctx context.Context, key []byte) error {
	if len(key) == 0 {
		return ErrInvalidKey
	}
	_, err := s.db.ExecuteNonQuery(ctx, s.saveQuery,
		dbutil.NewParameterSet().Positional(s.name, BytesToHex(key)))
	return err
}

// isHexKey reports whether b is hex text encoding an AES-128, AES-192 or AES-256 key.
func isHexKey(b []byte) bool {
	switch len(b) {
	case 32, 48, 64:
	default:
		return false
	}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
