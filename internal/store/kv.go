package store

import (
	"database/sql"
	"fmt"
	"slices"
	"sync"
)

// Record is one stored value.
type Record struct {
	Key   string
	Value []byte
}

// KV is a keyed collection that remembers first-insertion order.
// Upserting an existing key replaces its value in place.
type KV interface {
	Upsert(key string, value []byte) error
	Get(key string) ([]byte, bool, error)
	Delete(key string) (bool, error)
	List() ([]Record, error)
}

// Collection is a KV backed by the kv table.
type Collection struct {
	db   *DB
	name string
}

func (db *DB) Collection(name string) *Collection {
	return &Collection{db: db, name: name}
}

func (c *Collection) Upsert(key string, value []byte) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	err = tx.QueryRow("SELECT seq FROM kv WHERE collection = ? AND key = ?", c.name, key).Scan(&seq)
	switch {
	case err == sql.ErrNoRows:
		if err := tx.QueryRow(
			"SELECT COALESCE(MAX(seq), 0) + 1 FROM kv WHERE collection = ?", c.name,
		).Scan(&seq); err != nil {
			return fmt.Errorf("allocating sequence: %w", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO kv (collection, key, value, seq) VALUES (?, ?, ?, ?)",
			c.name, key, value, seq,
		); err != nil {
			return fmt.Errorf("inserting %s/%s: %w", c.name, key, err)
		}
	case err != nil:
		return fmt.Errorf("looking up %s/%s: %w", c.name, key, err)
	default:
		if _, err := tx.Exec(
			"UPDATE kv SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE collection = ? AND key = ?",
			value, c.name, key,
		); err != nil {
			return fmt.Errorf("updating %s/%s: %w", c.name, key, err)
		}
	}

	return tx.Commit()
}

func (c *Collection) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := c.db.QueryRow("SELECT value FROM kv WHERE collection = ? AND key = ?", c.name, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s/%s: %w", c.name, key, err)
	}
	return value, true, nil
}

func (c *Collection) Delete(key string) (bool, error) {
	res, err := c.db.Exec("DELETE FROM kv WHERE collection = ? AND key = ?", c.name, key)
	if err != nil {
		return false, fmt.Errorf("deleting %s/%s: %w", c.name, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Collection) List() ([]Record, error) {
	rows, err := c.db.Query("SELECT key, value FROM kv WHERE collection = ? ORDER BY seq ASC", c.name)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.name, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Key, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", c.name, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Memory is an in-process KV.
type Memory struct {
	mu      sync.Mutex
	keys    []string
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Upsert(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return slices.Clone(v), ok, nil
}

func (m *Memory) Delete(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; !ok {
		return false, nil
	}
	delete(m.entries, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return true, nil
}

func (m *Memory) List() ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Record{Key: k, Value: slices.Clone(m.entries[k])})
	}
	return out, nil
}
