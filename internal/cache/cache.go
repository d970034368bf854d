// Package cache stores generated output keyed by source text and rewrite
// configuration in a sqlite database.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/t14raptor/regen/transform/regenerator"
)

type Cache struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies pending
// migrations.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the output stored under key. The boolean is false on a miss.
func (c *Cache) Get(key string) (string, bool, error) {
	var output string
	err := c.db.QueryRow(`SELECT output FROM outputs WHERE key = ?`, key).Scan(&output)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}
	if _, err := c.db.Exec(`UPDATE outputs SET hits = hits + 1 WHERE key = ?`, key); err != nil {
		return "", false, fmt.Errorf("counting cache hit: %w", err)
	}
	return output, true, nil
}

// Put stores output under key, replacing an existing entry.
func (c *Cache) Put(key, output string) error {
	_, err := c.db.Exec(`
		INSERT INTO outputs (key, output) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET output = excluded.output, hits = 0
	`, key, output)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Hits returns how often key was served from the cache.
func (c *Cache) Hits(key string) (int, error) {
	var hits int
	err := c.db.QueryRow(`SELECT hits FROM outputs WHERE key = ?`, key).Scan(&hits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return hits, err
}

// Key identifies the output of rewriting source with cfg.
func Key(source string, cfg regenerator.Config) string {
	h := sha256.New()
	for _, part := range []string{cfg.Adapter, cfg.Result, cfg.ResumeParam, cfg.StepParam, source} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
