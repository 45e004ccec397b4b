package store

// schema contains the SQL statements to create the crossref database schema.
const schema = `
-- Files table
CREATE TABLE IF NOT EXISTS files (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    path     TEXT NOT NULL UNIQUE,
    language TEXT NOT NULL,
    size     INTEGER NOT NULL,
    lines    INTEGER NOT NULL,
    seq      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_files_language ON files(language);
CREATE INDEX IF NOT EXISTS idx_files_seq ON files(seq);

-- Symbol definitions table
CREATE TABLE IF NOT EXISTS symbols (
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    file TEXT NOT NULL,
    seq  INTEGER NOT NULL,
    FOREIGN KEY (file) REFERENCES files(path)
);

CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
CREATE INDEX IF NOT EXISTS idx_symbols_file ON symbols(file);

-- Import edges table
CREATE TABLE IF NOT EXISTS imports (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    file     TEXT NOT NULL,
    target   TEXT NOT NULL,
    kind     TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (file) REFERENCES files(path)
);

CREATE INDEX IF NOT EXISTS idx_imports_file ON imports(file);
CREATE INDEX IF NOT EXISTS idx_imports_kind ON imports(kind);

-- Call edges table
CREATE TABLE IF NOT EXISTS call_edges (
    caller       TEXT NOT NULL,
    caller_files TEXT NOT NULL,
    callee       TEXT NOT NULL,
    callee_files TEXT NOT NULL,
    PRIMARY KEY (caller, callee, callee_files)
);

CREATE INDEX IF NOT EXISTS idx_call_edges_caller ON call_edges(caller);
CREATE INDEX IF NOT EXISTS idx_call_edges_callee ON call_edges(callee);

-- Metadata table for index info
CREATE TABLE IF NOT EXISTS metadata (
    key   TEXT PRIMARY KEY,
    value TEXT
);
`
