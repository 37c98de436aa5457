// ABOUTME: Badger-backed cache of fetched HTTP response bodies, keyed by URL.
// ABOUTME: Entries expire via TTL; invalidation is always explicit, never implicit.

package cache

import (
	"errors"
	"fmt"
	"os"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

// Cache stores raw response bodies so repeated builds don't re-fetch
// every licence detail from the network.
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// Open opens (or creates) a cache at dir. Entries written through Set
// expire after ttl; a zero ttl means entries never expire.
func Open(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

// Get returns the cached body for key, or ok=false on a miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	var val []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores a body under key with the configured TTL.
func (c *Cache) Set(key string, val []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), val)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Invalidate removes a single key. Removing a key that isn't cached is
// not an error.
func (c *Cache) Invalidate(key string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

// Reset drops every cached entry.
func (c *Cache) Reset() error {
	return c.db.DropAll()
}

// Len counts the live entries.
func (c *Cache) Len() (int, error) {
	count := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
