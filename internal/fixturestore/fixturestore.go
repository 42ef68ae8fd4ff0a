// Package fixturestore caches decoded golden fixtures in an embedded
// badger database, keyed by schema name and content hash, so repeated CLI
// and cross-language test-driver runs against the same testdata corpus
// skip redundant decode work. A miss always falls back to the caller
// re-decoding from testdata/, so the cache's presence never changes
// observable behavior.
package fixturestore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/marmos91/sdp/internal/logger"
)

const prefixFixture = "fx:"

// Store wraps an embedded badger database.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) the badger database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("fixturestore: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives the cache key for a schema name and its raw content.
func Key(schemaName string, content []byte) string {
	sum := sha256.Sum256(content)
	return schemaName + "/" + hex.EncodeToString(sum[:])
}

func dbKey(key string) []byte {
	return []byte(prefixFixture + key)
}

// Get returns the cached decoded value for key, and whether it was found.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(dbKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("fixturestore: get %s: %w", key, err)
	}
	if value == nil {
		return nil, false, nil
	}
	return value, true, nil
}

// Put caches the decoded value for key, overwriting any prior entry.
func (s *Store) Put(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(dbKey(key), value)
	})
	if err != nil {
		return fmt.Errorf("fixturestore: put %s: %w", key, err)
	}
	return nil
}

// GetOrDecode returns the cached value for key, decoding and populating
// the cache via decode on a miss.
func (s *Store) GetOrDecode(key string, decode func() ([]byte, error)) ([]byte, error) {
	if cached, ok, err := s.Get(key); err != nil {
		return nil, err
	} else if ok {
		logger.Debug("fixturestore hit", "key", key)
		return cached, nil
	}

	logger.Debug("fixturestore miss", "key", key)
	value, err := decode()
	if err != nil {
		return nil, err
	}
	if err := s.Put(key, value); err != nil {
		return nil, err
	}
	return value, nil
}
