// Package store caches extraction results in DuckDB, keyed by the
// digests of the input sequences. Re-describing the same pair of
// sequences is then a lookup instead of a quadratic recursion.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for caching extraction results.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one cached extraction.
type Entry struct {
	ReferenceDigest string
	SampleDigest    string
	Type            string
	Description     string
	Weight          uint64
	VariantCount    int
}

// Open opens or creates a DuckDB database at the given path. Use an
// empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS extractions (
		reference_digest VARCHAR,
		sample_digest VARCHAR,
		seq_type VARCHAR,
		description VARCHAR,
		weight UBIGINT,
		variant_count INTEGER,
		created_at TIMESTAMP DEFAULT current_timestamp
	)`)
	return err
}

// Digest returns the cache key digest of a sequence.
func Digest(seq []byte) string {
	sum := sha256.Sum256(seq)
	return hex.EncodeToString(sum[:])
}

// Get looks up a cached extraction. Returns nil when the pair has not
// been extracted before.
func (s *Store) Get(referenceDigest, sampleDigest, seqType string) (*Entry, error) {
	row := s.db.QueryRow(`SELECT description, weight, variant_count
		FROM extractions
		WHERE reference_digest = ? AND sample_digest = ? AND seq_type = ?
		ORDER BY created_at DESC LIMIT 1`,
		referenceDigest, sampleDigest, seqType)

	e := &Entry{
		ReferenceDigest: referenceDigest,
		SampleDigest:    sampleDigest,
		Type:            seqType,
	}
	if err := row.Scan(&e.Description, &e.Weight, &e.VariantCount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query extraction: %w", err)
	}
	return e, nil
}

// Put records an extraction result.
func (s *Store) Put(e Entry) error {
	_, err := s.db.Exec(`INSERT INTO extractions
		(reference_digest, sample_digest, seq_type, description, weight, variant_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ReferenceDigest, e.SampleDigest, e.Type, e.Description, e.Weight, e.VariantCount)
	if err != nil {
		return fmt.Errorf("insert extraction: %w", err)
	}
	return nil
}

// Count returns the number of cached extractions.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT count(*) FROM extractions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count extractions: %w", err)
	}
	return n, nil
}
