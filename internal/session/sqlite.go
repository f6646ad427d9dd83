package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// SQLiteStore persists the session in a small local database: one metadata
// table with exactly two keys. The current values are mirrored in memory so
// reads never touch the database, and the mirror is only updated after a
// successful transaction, so callers never observe a half-written session.
type SQLiteStore struct {
	db *sql.DB

	mu    sync.RWMutex
	token string
	user  *models.User
}

// OpenSQLite opens (creating if necessary) the session database at path and
// loads any previously persisted session into memory.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create session dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate session db: %w", err)
	}
	return nil
}

func (s *SQLiteStore) load() error {
	token, err := s.get(keyToken)
	if err != nil {
		return err
	}
	s.token = string(token)

	raw, err := s.get(keyUser)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			// Corrupt snapshot: keep the token, drop the cached user.
			return nil
		}
		s.user = &u
	}
	return nil
}

func (s *SQLiteStore) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SQLiteStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SQLiteStore) IsAuthenticated() bool {
	return s.Token() != ""
}

// Set persists the token and user snapshot together in one transaction.
func (s *SQLiteStore) Set(token string, user *models.User) error {
	var raw []byte
	if user != nil {
		var err error
		raw, err = json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to encode user snapshot: %w", err)
		}
	}

	err := s.withTx(func(tx *sql.Tx) error {
		if err := upsert(tx, keyToken, []byte(token)); err != nil {
			return err
		}
		if user == nil {
			_, err := tx.Exec(`DELETE FROM metadata WHERE key = ?`, keyUser)
			return err
		}
		return upsert(tx, keyUser, raw)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		u := *user
		s.user = &u
	} else {
		s.user = nil
	}
	return nil
}

// Clear removes both fields together.
func (s *SQLiteStore) Clear() error {
	err := s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM metadata WHERE key IN (?, ?)`, keyToken, keyUser)
		return err
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("failed to begin session tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func upsert(tx *sql.Tx, key string, value []byte) error {
	_, err := tx.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
