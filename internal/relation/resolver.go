package relation

import (
	"fmt"
	"strings"

	"github.com/abramin/crossref/internal/config"
	"github.com/abramin/crossref/internal/index"
)

// ImportKind classifies an import target as inside or outside the project.
type ImportKind string

const (
	ImportLocal    ImportKind = "local"
	ImportExternal ImportKind = "external"
)

// ImportEdge is one classified import from a file. Duplicate targets are
// preserved; encounter order is kept.
type ImportEdge struct {
	Target string
	Kind   ImportKind
}

// FileImports groups a file's import edges.
type FileImports struct {
	File  string
	Edges []ImportEdge
}

// SymbolUsage lists the files that reference a symbol, excluding every
// file that defines it. Deduplicated by file, first-seen order.
type SymbolUsage struct {
	Symbol string
	UsedBy []string
}

// FileUsage groups symbol usage under a defining file.
type FileUsage struct {
	File    string
	Symbols []SymbolUsage
}

// Call is one resolved callee with its defining file(s) after the
// ambiguity policy is applied.
type Call struct {
	Callee string
	Files  []string
}

// CallerCalls aggregates the call edges attributed to one defined symbol.
type CallerCalls struct {
	Caller string
	Files  []string
	Calls  []Call
}

// Graphs holds the three relation graphs for the requested depth. It is
// pure data; rendering is a separate step.
type Graphs struct {
	Depth   int
	Imports []FileImports
	Usage   []FileUsage
	Calls   []CallerCalls
}

// Resolve builds the depth-gated relation graphs from a finished project
// index. The index is read-only here; resolution is pure data
// transformation and has no failure mode beyond an invalid depth.
func Resolve(p *index.Project, depth int, policy config.AmbiguousPolicy) (*Graphs, error) {
	if depth < 1 || depth > 3 {
		return nil, fmt.Errorf("invalid depth %d (want 1-3)", depth)
	}

	g := &Graphs{Depth: depth}
	g.Imports = resolveImports(p)
	if depth >= 2 {
		g.Usage = resolveUsage(p, policy)
	}
	if depth >= 3 {
		g.Calls = resolveCalls(p, policy)
	}
	return g, nil
}

// ClassifyImport applies the path-shape heuristic: targets with a relative
// or absolute path marker (leading "." or "/") are local, everything else
// (package and namespace names) is external.
func ClassifyImport(target string) ImportKind {
	if strings.HasPrefix(target, ".") || strings.HasPrefix(target, "/") {
		return ImportLocal
	}
	return ImportExternal
}

func resolveImports(p *index.Project) []FileImports {
	var out []FileImports
	for _, f := range p.Files {
		if len(f.Imports) == 0 {
			continue
		}
		fi := FileImports{File: f.Record.Path}
		for _, target := range f.Imports {
			fi.Edges = append(fi.Edges, ImportEdge{Target: target, Kind: ClassifyImport(target)})
		}
		out = append(out, fi)
	}
	return out
}

func resolveUsage(p *index.Project, policy config.AmbiguousPolicy) []FileUsage {
	// One pass per symbol, cached so multi-definition symbols are not
	// re-resolved under each defining file.
	usedBy := make(map[string][]string)
	for _, name := range p.SymbolOrder {
		entry := p.Symbols[name]
		var files []string
		for _, f := range p.Files {
			if entry.DefinedIn(f.Record.Path) {
				continue
			}
			for _, occ := range f.Occurrences {
				if occ.Name == name {
					files = append(files, f.Record.Path)
					break
				}
			}
		}
		usedBy[name] = files
	}

	var out []FileUsage
	for _, f := range p.Files {
		fu := FileUsage{File: f.Record.Path}
		for _, def := range f.Defs {
			entry := p.Symbols[def.Name]
			if policy == config.AmbiguousFirst && entry.Defs[0].File != f.Record.Path {
				continue
			}
			if len(usedBy[def.Name]) == 0 {
				continue
			}
			fu.Symbols = append(fu.Symbols, SymbolUsage{Symbol: def.Name, UsedBy: usedBy[def.Name]})
		}
		if len(fu.Symbols) > 0 {
			out = append(out, fu)
		}
	}
	return out
}

func resolveCalls(p *index.Project, policy config.AmbiguousPolicy) []CallerCalls {
	type acc struct {
		calls []Call
		seen  map[string]bool
	}
	accs := make(map[string]*acc)
	var order []string

	for _, f := range p.Files {
		if len(f.Defs) == 0 {
			continue
		}

		// Call-shaped tokens that resolve in the symbol table, deduplicated
		// per file in occurrence order. Self-calls stay in.
		var callees []string
		seenCallee := make(map[string]bool)
		for _, occ := range f.Occurrences {
			if !occ.Call || seenCallee[occ.Name] {
				continue
			}
			if _, ok := p.Symbols[occ.Name]; !ok {
				continue
			}
			seenCallee[occ.Name] = true
			callees = append(callees, occ.Name)
		}
		if len(callees) == 0 {
			continue
		}

		// A file defining multiple symbols attributes its calls to all of
		// them; the ambiguity is accepted, not resolved.
		for _, def := range f.Defs {
			a, ok := accs[def.Name]
			if !ok {
				a = &acc{seen: make(map[string]bool)}
				accs[def.Name] = a
				order = append(order, def.Name)
			}
			for _, callee := range callees {
				if a.seen[callee] {
					continue
				}
				a.seen[callee] = true
				a.calls = append(a.calls, Call{
					Callee: callee,
					Files:  policyFiles(p.Symbols[callee], policy),
				})
			}
		}
	}

	out := make([]CallerCalls, 0, len(order))
	for _, name := range order {
		out = append(out, CallerCalls{
			Caller: name,
			Files:  policyFiles(p.Symbols[name], policy),
			Calls:  accs[name].calls,
		})
	}
	return out
}

// policyFiles applies the ambiguous-symbol policy to a symbol's defining
// files.
func policyFiles(entry *index.SymbolEntry, policy config.AmbiguousPolicy) []string {
	files := entry.Files()
	files = dedupe(files)
	if policy == config.AmbiguousFirst && len(files) > 1 {
		return files[:1]
	}
	return files
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
