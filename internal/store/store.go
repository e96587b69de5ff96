// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists resolved compound records in a local SQLite
// database so repeat detail lookups work offline.
// See docs/ARCHITECTURE.md § Offline Store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chemsearch/pkg/types"
)

// Store manages the compound SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the compound database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS compounds (
		cid INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		molecular_formula TEXT,
		molecular_weight REAL,
		iupac_name TEXT,
		canonical_smiles TEXT,
		source TEXT,
		fetched_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save upserts the given records. Later saves of the same CID replace the
// stored properties.
func (s *Store) Save(ctx context.Context, records []types.CompoundRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO compounds
		(cid, name, molecular_formula, molecular_weight, iupac_name, canonical_smiles, source, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cid) DO UPDATE SET
			name = excluded.name,
			molecular_formula = excluded.molecular_formula,
			molecular_weight = excluded.molecular_weight,
			iupac_name = excluded.iupac_name,
			canonical_smiles = excluded.canonical_smiles,
			source = excluded.source,
			fetched_at = excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		if r.CID <= 0 {
			return fmt.Errorf("record %q: cid must be positive, got %d", r.Name, r.CID)
		}
		if _, err := stmt.ExecContext(ctx, r.CID, r.Name, r.MolecularFormula,
			r.MolecularWeight, r.IUPACName, r.CanonicalSMILES, r.Source, now); err != nil {
			return fmt.Errorf("saving cid %d: %w", r.CID, err)
		}
	}
	return tx.Commit()
}

// Get returns the stored record for a CID, reporting whether one exists.
func (s *Store) Get(ctx context.Context, cid int) (types.CompoundRecord, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT cid, name, molecular_formula,
		molecular_weight, iupac_name, canonical_smiles, source
		FROM compounds WHERE cid = ?`, cid)

	var r types.CompoundRecord
	err := row.Scan(&r.CID, &r.Name, &r.MolecularFormula, &r.MolecularWeight,
		&r.IUPACName, &r.CanonicalSMILES, &r.Source)
	if err == sql.ErrNoRows {
		return types.CompoundRecord{}, false, nil
	}
	if err != nil {
		return types.CompoundRecord{}, false, fmt.Errorf("querying cid %d: %w", cid, err)
	}
	return r, true, nil
}

// List returns stored records ordered by name, capped at limit (0 = all).
func (s *Store) List(ctx context.Context, limit int) ([]types.CompoundRecord, error) {
	q := `SELECT cid, name, molecular_formula, molecular_weight,
		iupac_name, canonical_smiles, source FROM compounds ORDER BY name`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing compounds: %w", err)
	}
	defer rows.Close()

	var records []types.CompoundRecord
	for rows.Next() {
		var r types.CompoundRecord
		if err := rows.Scan(&r.CID, &r.Name, &r.MolecularFormula, &r.MolecularWeight,
			&r.IUPACName, &r.CanonicalSMILES, &r.Source); err != nil {
			return nil, fmt.Errorf("scanning compound row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
