package index

import "github.com/abramin/crossref/internal/scan"

// FileEntry holds the scanned facts for one file, in the order the walker
// discovered it.
type FileEntry struct {
	Record      *scan.FileRecord
	Lines       int
	Imports     []string
	Defs        []scan.Definition
	Occurrences []scan.Occurrence
}

// SymbolDef records one definition site of a symbol.
type SymbolDef struct {
	File string
	Kind string
}

// SymbolEntry maps a symbol name to its ordered, non-empty set of
// definition sites. Seq is the insertion sequence number captured when the
// name was first seen; rendering orders by it rather than sorting.
type SymbolEntry struct {
	Name string
	Seq  int
	Defs []SymbolDef
}

// DefinedIn reports whether the symbol has a definition in the given file.
func (e *SymbolEntry) DefinedIn(file string) bool {
	for _, d := range e.Defs {
		if d.File == file {
			return true
		}
	}
	return false
}

// Files returns the defining files in discovery order.
func (e *SymbolEntry) Files() []string {
	files := make([]string, len(e.Defs))
	for i, d := range e.Defs {
		files[i] = d.File
	}
	return files
}

// Project is the write-once index built by the Indexer. After Run returns
// it is read-only; the resolver never mutates it.
type Project struct {
	Root        string
	Files       []*FileEntry
	Symbols     map[string]*SymbolEntry
	SymbolOrder []string
}

// Symbol returns the entry for a name, if any file defines it.
func (p *Project) Symbol(name string) (*SymbolEntry, bool) {
	e, ok := p.Symbols[name]
	return e, ok
}

// addSymbol appends a definition site, creating the entry on first sight.
// Duplicate names across files accumulate; they are never overwritten.
func (p *Project) addSymbol(name, kind, file string) {
	e, ok := p.Symbols[name]
	if !ok {
		e = &SymbolEntry{Name: name, Seq: len(p.SymbolOrder)}
		p.Symbols[name] = e
		p.SymbolOrder = append(p.SymbolOrder, name)
	}
	e.Defs = append(e.Defs, SymbolDef{File: file, Kind: kind})
}
