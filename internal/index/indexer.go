package index

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/abramin/crossref/internal/config"
	"github.com/abramin/crossref/internal/lang"
	"github.com/abramin/crossref/internal/scan"
)

// maxScanWorkers caps the scan pool regardless of CPU count. File scanning
// is I/O plus regex work and stops benefiting from wider fan-out.
const maxScanWorkers = 8

// Indexer coordinates the indexing pipeline: walk, parallel scan, fold.
type Indexer struct {
	cfg        *config.Config
	projectDir string
}

// NewIndexer creates a new indexer for the given project directory.
func NewIndexer(cfg *config.Config, projectDir string) *Indexer {
	absPath, err := filepath.Abs(projectDir)
	if err != nil {
		absPath = projectDir
	}
	return &Indexer{
		cfg:        cfg,
		projectDir: absPath,
	}
}

// Run executes the indexing pipeline and returns the finished Project.
// The scan phase fans out across a bounded worker pool; the fold into the
// symbol table runs single-threaded afterwards so insertion order is the
// walker's discovery order and the name→files map never races.
func (idx *Indexer) Run(ctx context.Context) (*Project, error) {
	walker, err := scan.NewWalker(idx.cfg, idx.projectDir)
	if err != nil {
		return nil, err
	}

	files, err := walker.Walk()
	if err != nil {
		return nil, fmt.Errorf("walking project: %w", err)
	}

	results := make([]*scan.Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(idx.workers())
	for i, rec := range files {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rules, ok := lang.Rules(rec.Language)
			if !ok {
				results[i] = &scan.Result{}
				return nil
			}
			results[i] = scan.ScanFile(rec, idx.cfg.MaxFileSize, rules)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// A cancelled run discards the in-progress index
		return nil, err
	}

	p := &Project{
		Root:    walker.Root(),
		Symbols: make(map[string]*SymbolEntry),
	}
	for i, rec := range files {
		r := results[i]
		p.Files = append(p.Files, &FileEntry{
			Record:      rec,
			Lines:       r.Lines,
			Imports:     r.Imports,
			Defs:        r.Defs,
			Occurrences: r.Occurrences,
		})
		for _, d := range r.Defs {
			p.addSymbol(d.Name, d.Kind, rec.Path)
		}
	}

	return p, nil
}

func (idx *Indexer) workers() int {
	if idx.cfg.Workers > 0 {
		return idx.cfg.Workers
	}
	n := runtime.GOMAXPROCS(0)
	if n > maxScanWorkers {
		n = maxScanWorkers
	}
	return n
}
