// Package store provides SQLite-based persistence for generated
// boards.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/castaway-games/seaboard/internal/board"
)

// DB wraps a SQLite connection for board persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		scenario TEXT NOT NULL,
		players INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		layout_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_boards_created ON boards(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Meta describes a saved board without its layout.
type Meta struct {
	ID        string `db:"id"`
	Scenario  string `db:"scenario"`
	Players   int    `db:"players"`
	Seed      int64  `db:"seed"`
	CreatedAt int64  `db:"created_at"` // unix seconds
}

// Created returns the save time.
func (m Meta) Created() time.Time {
	return time.Unix(m.CreatedAt, 0)
}

// SaveBoard stores a generated board with the inputs that produced it
// and returns the new board's id.
func (db *DB) SaveBoard(b *board.Board, scenarioTag string, players int, seed int64) (string, error) {
	layout, err := json.Marshal(b.Snapshot())
	if err != nil {
		return "", fmt.Errorf("encode layout: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO boards (id, scenario, players, seed, created_at, layout_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, scenarioTag, players, seed, time.Now().Unix(), string(layout),
	)
	if err != nil {
		return "", fmt.Errorf("insert board: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadBoard retrieves a saved board's layout by id.
func (db *DB) LoadBoard(id string) (*board.Snapshot, error) {
	var layout string
	err := db.conn.Get(&layout, "SELECT layout_json FROM boards WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", id, err)
	}

	var snap board.Snapshot
	if err := json.Unmarshal([]byte(layout), &snap); err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", id, err)
	}
	return &snap, nil
}

// ListBoards returns the most recently saved boards.
func (db *DB) ListBoards(limit int) ([]Meta, error) {
	var metas []Meta
	err := db.conn.Select(&metas,
		`SELECT id, scenario, players, seed, created_at
		 FROM boards ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	return metas, err
}
