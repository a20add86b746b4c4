// Package persistence provides SQLite-based region snapshot storage, so a
// generated region can be queried with plain SQL by downstream tools.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/region-forge/internal/region"
)

// DB wraps a SQLite connection holding one region snapshot.
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
	CREATE TABLE IF NOT EXISTS region_meta (
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		years INTEGER NOT NULL,
		mode TEXT NOT NULL,
		tiles_json TEXT NOT NULL,
		color_map_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS realms (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		capital_settlement_id TEXT,
		founded_year INTEGER NOT NULL,
		culture TEXT NOT NULL,
		notes_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settlements (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		realm_id TEXT NOT NULL,
		founded_year INTEGER NOT NULL,
		population INTEGER NOT NULL,
		tags_json TEXT NOT NULL,
		history_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS roads (
		from_id TEXT NOT NULL,
		to_id TEXT NOT NULL,
		type TEXT NOT NULL,
		tiles_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ruins (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		destroyed_year INTEGER NOT NULL,
		cause TEXT NOT NULL,
		tags_json TEXT NOT NULL,
		notes_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		type TEXT NOT NULL,
		realm_ids_json TEXT NOT NULL,
		summary TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_settlements_realm ON settlements(realm_id);
	CREATE INDEX IF NOT EXISTS idx_events_year ON events(year);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes a full region snapshot (full replace).
func (db *DB) Save(doc *region.Document) error {
	slog.Info("saving region snapshot",
		"seed", doc.Seed,
		"realms", len(doc.Realms),
		"settlements", len(doc.Settlements),
	)

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"region_meta", "realms", "settlements", "roads", "ruins", "events"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	tilesJSON, err := json.Marshal(doc.Tiles)
	if err != nil {
		return fmt.Errorf("marshal tiles: %w", err)
	}
	colorJSON, err := json.Marshal(doc.ColorMap)
	if err != nil {
		return fmt.Errorf("marshal color map: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO region_meta (seed, width, height, years, mode, tiles_json, color_map_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		doc.Seed, doc.Width, doc.Height, doc.Years, string(doc.Mode),
		string(tilesJSON), string(colorJSON),
	); err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}

	for _, r := range doc.Realms {
		notesJSON, _ := json.Marshal(r.Notes)
		if _, err := tx.Exec(
			`INSERT INTO realms (id, name, color, capital_settlement_id, founded_year, culture, notes_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.Color, r.CapitalSettlementID, r.FoundedYear, r.Culture, string(notesJSON),
		); err != nil {
			return fmt.Errorf("insert realm %s: %w", r.ID, err)
		}
	}

	for _, s := range doc.Settlements {
		tagsJSON, _ := json.Marshal(s.Tags)
		historyJSON, _ := json.Marshal(s.History)
		if _, err := tx.Exec(
			`INSERT INTO settlements (id, name, type, x, y, realm_id, founded_year, population, tags_json, history_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.Name, string(s.Type), s.Tile[0], s.Tile[1],
			s.RealmID, s.FoundedYear, s.Population, string(tagsJSON), string(historyJSON),
		); err != nil {
			return fmt.Errorf("insert settlement %s: %w", s.ID, err)
		}
	}

	for _, r := range doc.Roads {
		pathJSON, _ := json.Marshal(r.Tiles)
		if _, err := tx.Exec(
			`INSERT INTO roads (from_id, to_id, type, tiles_json) VALUES (?, ?, ?, ?)`,
			r.From, r.To, r.Type, string(pathJSON),
		); err != nil {
			return fmt.Errorf("insert road %s->%s: %w", r.From, r.To, err)
		}
	}

	for _, r := range doc.Ruins {
		tagsJSON, _ := json.Marshal(r.Tags)
		notesJSON, _ := json.Marshal(r.Notes)
		if _, err := tx.Exec(
			`INSERT INTO ruins (id, name, x, y, destroyed_year, cause, tags_json, notes_json)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.Tile[0], r.Tile[1], r.DestroyedYear, string(r.Cause),
			string(tagsJSON), string(notesJSON),
		); err != nil {
			return fmt.Errorf("insert ruin %s: %w", r.ID, err)
		}
	}

	for _, e := range doc.Events {
		realmIDsJSON, _ := json.Marshal(e.RealmIDs)
		if _, err := tx.Exec(
			`INSERT INTO events (id, year, type, realm_ids_json, summary) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Year, string(e.Type), string(realmIDsJSON), e.Summary,
		); err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the row count of one snapshot table.
func (db *DB) Count(table string) (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM "+table)
	return n, err
}

// EventSummaries returns all stored event summaries ordered by year.
func (db *DB) EventSummaries() ([]string, error) {
	var out []string
	err := db.conn.Select(&out, "SELECT summary FROM events ORDER BY year, id")
	return out, err
}
