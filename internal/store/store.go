// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives completed search result sets in a SQLite database
// so past runs can be listed and exported without re-querying the services.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/litscout/pkg/types"
)

// Store manages the results archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the archive database at path, creating the
// schema if it does not exist.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS result_sets (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL,
			gene TEXT NOT NULL,
			search_terms TEXT,
			synonyms TEXT,
			hit_count INTEGER,
			hit_count_display TEXT,
			created TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS queries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			result_set INTEGER NOT NULL REFERENCES result_sets(rowid),
			position INTEGER NOT NULL,
			query TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			result_set INTEGER NOT NULL REFERENCES result_sets(rowid),
			doc_id TEXT NOT NULL,
			source TEXT,
			title TEXT,
			year TEXT,
			authors TEXT,
			pub_types TEXT,
			abstract TEXT,
			keywords TEXT,
			url TEXT,
			preprint_of TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_queries_result_set ON queries(result_set)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_result_set ON documents(result_set)`,
		`CREATE INDEX IF NOT EXISTS idx_result_sets_key ON result_sets(key)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveResultSet archives one result set with its queries and documents in a
// single transaction, returning the archive row id.
func (s *Store) SaveResultSet(ctx context.Context, rs types.SearchResultSet) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO result_sets (key, gene, search_terms, synonyms, hit_count, hit_count_display, created)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rs.Key, rs.Gene, rs.SearchTerms, strings.Join(rs.Synonyms, "|"),
		rs.HitCount, rs.HitCountDisplay, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting result set: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading result set id: %w", err)
	}

	for i, q := range rs.Queries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO queries (result_set, position, query) VALUES (?, ?, ?)`,
			id, i+1, q); err != nil {
			return 0, fmt.Errorf("inserting query: %w", err)
		}
	}

	for _, doc := range rs.Documents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (result_set, doc_id, source, title, year, authors, pub_types, abstract, keywords, url, preprint_of)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, doc.ID, doc.Source, doc.Title, doc.Year, doc.Authors, doc.PubTypes,
			doc.Abstract, strings.Join(doc.Keywords, "|"), doc.URL, doc.PreprintOf); err != nil {
			return 0, fmt.Errorf("inserting document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing result set: %w", err)
	}
	return id, nil
}

// ArchiveEntry summarizes one archived result set.
type ArchiveEntry struct {
	ID              int64
	Key             string
	Gene            string
	SearchTerms     string
	HitCountDisplay string
	Created         string
}

// ListResultSets returns the archive entries, newest first.
func (s *Store) ListResultSets(ctx context.Context) ([]ArchiveEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rowid, key, gene, search_terms, hit_count_display, created
		 FROM result_sets ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing result sets: %w", err)
	}
	defer rows.Close()

	entries := []ArchiveEntry{}
	for rows.Next() {
		var e ArchiveEntry
		if err := rows.Scan(&e.ID, &e.Key, &e.Gene, &e.SearchTerms, &e.HitCountDisplay, &e.Created); err != nil {
			return nil, fmt.Errorf("scanning result set: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExportResultSet reconstructs a full result set from the archive.
func (s *Store) ExportResultSet(ctx context.Context, id int64) (*types.SearchResultSet, error) {
	var rs types.SearchResultSet
	var synonyms string
	err := s.db.QueryRowContext(ctx,
		`SELECT key, gene, search_terms, synonyms, hit_count, hit_count_display
		 FROM result_sets WHERE rowid = ?`, id).
		Scan(&rs.Key, &rs.Gene, &rs.SearchTerms, &synonyms, &rs.HitCount, &rs.HitCountDisplay)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("result set %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading result set: %w", err)
	}
	if synonyms != "" {
		rs.Synonyms = strings.Split(synonyms, "|")
	}

	qRows, err := s.db.QueryContext(ctx,
		`SELECT query FROM queries WHERE result_set = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("reading queries: %w", err)
	}
	defer qRows.Close()
	for qRows.Next() {
		var q string
		if err := qRows.Scan(&q); err != nil {
			return nil, fmt.Errorf("scanning query: %w", err)
		}
		rs.Queries = append(rs.Queries, q)
	}
	if err := qRows.Err(); err != nil {
		return nil, err
	}

	dRows, err := s.db.QueryContext(ctx,
		`SELECT doc_id, source, title, year, authors, pub_types, abstract, keywords, url, preprint_of
		 FROM documents WHERE result_set = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("reading documents: %w", err)
	}
	defer dRows.Close()
	for dRows.Next() {
		var doc types.DocumentRecord
		var keywords string
		if err := dRows.Scan(&doc.ID, &doc.Source, &doc.Title, &doc.Year, &doc.Authors,
			&doc.PubTypes, &doc.Abstract, &keywords, &doc.URL, &doc.PreprintOf); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if keywords != "" {
			doc.Keywords = strings.Split(keywords, "|")
		}
		rs.Documents = append(rs.Documents, doc)
	}
	return &rs, dRows.Err()
}
