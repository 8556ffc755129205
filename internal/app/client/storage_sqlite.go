package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"rewear/internal/app/client/migration"
)

// FavoritesStore persists the local favorites set across sessions. The
// backend never sees it; favorites are a client-side bookmark list.
type FavoritesStore interface {
	Add(itemID int64) error
	Remove(itemID int64) error
	List() ([]int64, error)
	Close() error
}

type SQLiteFavorites struct {
	db *sql.DB
}

func NewSQLiteFavorites(path string) (*SQLiteFavorites, error) {
	if err := migration.New("sqlite3://"+path, migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("failed to migrate favorites database: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites database: %w", err)
	}

	return &SQLiteFavorites{db: db}, nil
}

func (s *SQLiteFavorites) Add(itemID int64) error {
	_, err := s.db.Exec(`
		INSERT INTO favorites (item_id, created_at) VALUES (?, ?)
		ON CONFLICT(item_id) DO NOTHING
	`, itemID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

func (s *SQLiteFavorites) Remove(itemID int64) error {
	_, err := s.db.Exec(`DELETE FROM favorites WHERE item_id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (s *SQLiteFavorites) List() ([]int64, error) {
	rows, err := s.db.Query(`SELECT item_id FROM favorites ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	return ids, nil
}

func (s *SQLiteFavorites) Close() error {
	return s.db.Close()
}
