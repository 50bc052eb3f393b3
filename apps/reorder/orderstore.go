// Copyright © 2026 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/reorder/orderstore.go
// Summary: SQLite persistence for the board ordering.

package reorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OrderStore persists the ordering of each list between runs. One row per
// item, keyed by list id and position. Purely demo scaffolding: the widget
// itself knows nothing about persistence.
type OrderStore struct {
	db *sql.DB
}

// OpenOrderStore opens (creating if needed) the order database at path.
func OpenOrderStore(path string) (*OrderStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create order db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open order db: %w", err)
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS list_order (
			list_id  TEXT NOT NULL,
			position INTEGER NOT NULL,
			item     TEXT NOT NULL,
			PRIMARY KEY (list_id, position)
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create order schema: %w", err)
	}
	return &OrderStore{db: db}, nil
}

// SaveOrder replaces the stored ordering for listID.
func (s *OrderStore) SaveOrder(listID string, items []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM list_order WHERE list_id = ?`, listID); err != nil {
		return err
	}
	for i, item := range items {
		if _, err := tx.Exec(
			`INSERT INTO list_order(list_id, position, item) VALUES(?, ?, ?)`,
			listID, i, item,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadOrder returns the stored ordering for listID, possibly empty.
func (s *OrderStore) LoadOrder(listID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT item FROM list_order WHERE list_id = ? ORDER BY position`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *OrderStore) Close() error {
	return s.db.Close()
}
