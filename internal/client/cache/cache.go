// Package cache keeps a small local history of searches and viewed
// items so the history command works without the backend.
package cache

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ViewKind tells what kind of item a view entry refers to
type ViewKind string

const (
	ViewSong   ViewKind = "SONG"
	ViewAlbum  ViewKind = "ALBUM"
	ViewArtist ViewKind = "ARTIST"
)

// SearchEntry is one recorded search
type SearchEntry struct {
	Query      string
	SearchedAt time.Time
}

// ViewEntry is one recorded item view
type ViewEntry struct {
	Kind      ViewKind
	SpotifyID string
	Name      string
	ViewedAt  time.Time
}

// Cache is the SQLite-backed history store
type Cache struct {
	db *sql.DB
}

// New opens the SQLite database at dbPath and applies migrations.
// Use ":memory:" for tests.
func New(ctx context.Context, dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single writer; WAL lets reads proceed alongside it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	c := &Cache{db: db}
	if err := c.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return c, nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	goose.SetBaseFS(embedMigrations)
	if err := goose.Up(c.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// RecordSearch stores a search query with the current time
func (c *Cache) RecordSearch(ctx context.Context, query string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO searches (query, searched_at) VALUES (?, ?)`,
		query, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// RecentSearches returns the n most recent searches, newest first
func (c *Cache) RecentSearches(ctx context.Context, n int) ([]SearchEntry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT query, searched_at FROM searches ORDER BY searched_at DESC, id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var entries []SearchEntry
	for rows.Next() {
		var e SearchEntry
		if err := rows.Scan(&e.Query, &e.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RecordView stores a viewed item with the current time
func (c *Cache) RecordView(ctx context.Context, kind ViewKind, spotifyID, name string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO views (kind, spotify_id, name, viewed_at) VALUES (?, ?, ?, ?)`,
		string(kind), spotifyID, name, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// RecentViews returns the n most recently viewed items, newest first
func (c *Cache) RecentViews(ctx context.Context, n int) ([]ViewEntry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT kind, spotify_id, name, viewed_at FROM views ORDER BY viewed_at DESC, id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer rows.Close()

	var entries []ViewEntry
	for rows.Next() {
		var e ViewEntry
		var kind string
		if err := rows.Scan(&kind, &e.SpotifyID, &e.Name, &e.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan view entry: %w", err)
		}
		e.Kind = ViewKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune keeps only the newest keep rows in each table
func (c *Cache) Prune(ctx context.Context, keep int) error {
	statements := []string{
		`DELETE FROM searches WHERE id NOT IN (SELECT id FROM searches ORDER BY searched_at DESC, id DESC LIMIT ?)`,
		`DELETE FROM views WHERE id NOT IN (SELECT id FROM views ORDER BY viewed_at DESC, id DESC LIMIT ?)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.ExecContext(ctx, stmt, keep); err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}
	}
	return nil
}
