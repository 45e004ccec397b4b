package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists an index run to SQLite. The database is a write-once
// artifact for downstream tooling; the relation engine never reads it
// back — graphs are rebuilt from scratch every invocation.
type Store struct {
	db      *sql.DB
	dbPath  string
	baseDir string // Project root directory
}

// Open creates or opens a crossref index database.
// By default, stores at .crossref/index.db relative to the given project directory.
func Open(projectDir string) (*Store, error) {
	crossrefDir := filepath.Join(projectDir, ".crossref")
	if err := os.MkdirAll(crossrefDir, 0755); err != nil {
		return nil, fmt.Errorf("creating .crossref directory: %w", err)
	}

	dbPath := filepath.Join(crossrefDir, "index.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}

	// Create schema
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{
		db:      db,
		dbPath:  dbPath,
		baseDir: projectDir,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DBPath returns the path to the database file.
func (s *Store) DBPath() string {
	return s.dbPath
}

// Clear removes all data from the database (for re-indexing).
func (s *Store) Clear() error {
	tables := []string{"call_edges", "imports", "symbols", "files", "metadata"}
	for _, table := range tables {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}
	}
	return nil
}

// SetMetadata stores a key-value pair in the metadata table.
func (s *Store) SetMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// GetMetadata retrieves a value from the metadata table.
func (s *Store) GetMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	return value, err
}

// Stats holds statistics about the indexed data.
type Stats struct {
	FileCount     int       `json:"file_count"`
	SymbolCount   int       `json:"symbol_count"`
	ImportCount   int       `json:"import_count"`
	CallEdgeCount int       `json:"call_edge_count"`
	IndexedAt     time.Time `json:"indexed_at"`
}

// GetStats returns statistics about the indexed data.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	rows := []struct {
		table string
		dest  *int
	}{
		{"files", &stats.FileCount},
		{"symbols", &stats.SymbolCount},
		{"imports", &stats.ImportCount},
		{"call_edges", &stats.CallEdgeCount},
	}

	for _, r := range rows {
		err := s.db.QueryRow("SELECT COUNT(*) FROM " + r.table).Scan(r.dest)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", r.table, err)
		}
	}

	// Get indexed timestamp from metadata
	if ts, err := s.GetMetadata("indexed_at"); err == nil {
		stats.IndexedAt, _ = time.Parse(time.RFC3339, ts)
	}

	return stats, nil
}

// IndexMetadata holds metadata written to index.json alongside the database.
type IndexMetadata struct {
	Version     string    `json:"version"`
	ProjectPath string    `json:"project_path"`
	IndexedAt   time.Time `json:"indexed_at"`
	FileCount   int       `json:"file_count"`
	SymbolCount int       `json:"symbol_count"`
	Files       []string  `json:"files"` // Project-relative paths, discovery order
}

// WriteIndexJSON writes a JSON summary next to the database for tools that
// do not want to open SQLite.
func (s *Store) WriteIndexJSON() error {
	stats, err := s.GetStats()
	if err != nil {
		return fmt.Errorf("getting stats: %w", err)
	}

	rows, err := s.db.Query("SELECT path FROM files ORDER BY seq")
	if err != nil {
		return fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	var files []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return fmt.Errorf("scanning file row: %w", err)
		}
		files = append(files, path)
	}

	meta := &IndexMetadata{
		Version:     "1",
		ProjectPath: s.baseDir,
		IndexedAt:   stats.IndexedAt,
		FileCount:   stats.FileCount,
		SymbolCount: stats.SymbolCount,
		Files:       files,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index.json: %w", err)
	}

	indexPath := filepath.Join(filepath.Dir(s.dbPath), "index.json")
	if err := os.WriteFile(indexPath, data, 0644); err != nil {
		return fmt.Errorf("writing index.json: %w", err)
	}

	return nil
}

// Tx returns the underlying database for advanced queries.
// Use with caution - prefer adding methods to Store instead.
func (s *Store) Tx() *sql.DB {
	return s.db
}

// BeginBatch starts a transaction for batch inserts.
// Call Commit() when done, or Rollback() on error.
func (s *Store) BeginBatch() (*BatchTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &BatchTx{tx: tx}, nil
}

// BatchTx wraps a transaction for batch operations.
type BatchTx struct {
	tx *sql.Tx
}

// Commit commits the batch transaction.
func (b *BatchTx) Commit() error {
	return b.tx.Commit()
}

// Rollback rolls back the batch transaction.
func (b *BatchTx) Rollback() error {
	return b.tx.Rollback()
}

// InsertFile inserts a file within the batch and returns its ID.
func (b *BatchTx) InsertFile(f *File) (FileID, error) {
	result, err := b.tx.Exec(`
		INSERT INTO files (path, language, size, lines, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			language = excluded.language,
			size = excluded.size,
			lines = excluded.lines,
			seq = excluded.seq
	`, f.Path, f.Language, f.Size, f.Lines, f.Seq)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return FileID(id), nil
}

// InsertSymbol inserts a symbol definition within the batch and returns its ID.
func (b *BatchTx) InsertSymbol(sym *Symbol) (SymbolID, error) {
	result, err := b.tx.Exec(`
		INSERT INTO symbols (name, kind, file, seq)
		VALUES (?, ?, ?, ?)
	`, sym.Name, sym.Kind, sym.File, sym.Seq)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return SymbolID(id), nil
}

// InsertImport inserts an import edge within the batch.
func (b *BatchTx) InsertImport(imp *Import) error {
	_, err := b.tx.Exec(`
		INSERT INTO imports (file, target, kind, position)
		VALUES (?, ?, ?, ?)
	`, imp.File, imp.Target, imp.Kind, imp.Position)
	return err
}

// InsertCallEdge inserts a call edge within the batch.
func (b *BatchTx) InsertCallEdge(edge *CallEdge) error {
	_, err := b.tx.Exec(`
		INSERT INTO call_edges (caller, caller_files, callee, callee_files)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(caller, callee, callee_files) DO NOTHING
	`, edge.Caller, edge.CallerFiles, edge.Callee, edge.CalleeFiles)
	return err
}
