package encryption

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/sharedkit/pkg/logger"
)

// KeyPair is the key material used by SimpleEncrypter.
type KeyPair struct {
	EncryptionKey []byte
	SigningKey    []byte
}

// KeyStore supplies the master key that unlocks split keys.
type KeyStore interface {
	MasterKey(ctx context.Context) ([]byte, error)
}

// KeyManager derives working keys from split key parts. Each part is stored
// encrypted under a master key; the working key is SHA-256 over the
// concatenation of every decrypted part.
type KeyManager struct {
	mu          sync.RWMutex
	splits      []KeyPair
	keys        KeyPair
	initialized bool
	logger      *slog.Logger
}

// KeyManagerOption configures a KeyManager.
type KeyManagerOption func(*KeyManager)

// WithKeyManagerLogger sets the logger used to report initialization failures.
func WithKeyManagerLogger(l *slog.Logger) KeyManagerOption {
	return func(m *KeyManager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewKeyManager creates a manager over encrypted split key parts.
func NewKeyManager(splits []KeyPair, opts ...KeyManagerOption) *KeyManager {
	m := &KeyManager{
		splits: splits,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize loads the master key from store and combines the split keys.
// The returned error never carries details about the key material; the cause
// is logged instead. Initializing twice is a no-op.
func (m *KeyManager) Initialize(ctx context.Context, store KeyStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	keys, err := m.combine(ctx, store)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to initialize key manager",
			logger.Component("encryption"),
			logger.Error(err),
		)
		return ErrKeyManagerInit
	}

	m.keys = keys
	m.initialized = true
	return nil
}

func (m *KeyManager) combine(ctx context.Context, store KeyStore) (KeyPair, error) {
	if store == nil {
		return KeyPair{}, ErrMasterKeyNotFound
	}
	master, err := store.MasterKey(ctx)
	if err != nil {
		return KeyPair{}, err
	}
	if len(m.splits) == 0 {
		return KeyPair{}, ErrMissingConfig
	}

	enc := make([][]byte, 0, len(m.splits))
	sig := make([][]byte, 0, len(m.splits))
	for _, s := range m.splits {
		e, err := Decrypt(s.EncryptionKey, master)
		if err != nil {
			return KeyPair{}, err
		}
		g, err := Decrypt(s.SigningKey, master)
		if err != nil {
			return KeyPair{}, err
		}
		enc = append(enc, e)
		sig = append(sig, g)
	}

	return KeyPair{
		EncryptionKey: combineKeys(nil, enc),
		SigningKey:    combineKeys(nil, sig),
	}, nil
}

// Initialized reports whether Initialize succeeded.
func (m *KeyManager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Keys returns a copy of the combined keys.
func (m *KeyManager) Keys() (KeyPair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized {
		return KeyPair{}, ErrNotInitialized
	}
	return KeyPair{
		EncryptionKey: bytes.Clone(m.keys.EncryptionKey),
		SigningKey:    bytes.Clone(m.keys.SigningKey),
	}, nil
}

// KeysWith derives per-caller keys by hashing the combined keys together with extra material.
func (m *KeyManager) KeysWith(extra ...[]byte) (KeyPair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized {
		return KeyPair{}, ErrNotInitialized
	}
	return KeyPair{
		EncryptionKey: combineKeys(m.keys.EncryptionKey, extra),
		SigningKey:    combineKeys(m.keys.SigningKey, extra),
	}, nil
}

func combineKeys(initial []byte, parts [][]byte) []byte {
	buf := bytes.Clone(initial)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return ComputeHash(buf)
}
