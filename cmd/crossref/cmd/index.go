package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abramin/crossref/internal/index"
	"github.com/abramin/crossref/internal/relation"
	"github.com/abramin/crossref/internal/store"
	"github.com/spf13/cobra"
)

var indexPath string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index a project and persist the result to .crossref/index.db",
	Long: `Scan a project directory and write the extracted files, symbols,
imports and call edges to a SQLite database under .crossref/ in the
project root, along with an index.json summary. The database is an
artifact for downstream tooling; the relation command does not read it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		fmt.Printf("Indexing project at %s\n", indexPath)

		indexer := index.NewIndexer(GetConfig(), indexPath)
		project, err := indexer.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("indexing failed: %w", err)
		}

		graphs, err := relation.Resolve(project, 3, GetConfig().Ambiguous)
		if err != nil {
			return err
		}

		st, err := store.Open(project.Root)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		if err := st.Clear(); err != nil {
			return fmt.Errorf("clearing store: %w", err)
		}

		if err := persist(st, project, graphs); err != nil {
			return err
		}

		if err := st.SetMetadata("indexed_at", start.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("writing metadata: %w", err)
		}
		if err := st.WriteIndexJSON(); err != nil {
			return fmt.Errorf("writing index.json: %w", err)
		}

		stats, err := st.GetStats()
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		fmt.Printf("Indexed %d files, %d symbols, %d imports, %d call edges in %v\n",
			stats.FileCount, stats.SymbolCount, stats.ImportCount, stats.CallEdgeCount,
			time.Since(start).Round(time.Millisecond))
		fmt.Printf("Database: %s\n", st.DBPath())
		return nil
	},
}

// persist writes the project and its resolved graphs in one transaction so
// a failed run never leaves a half-written index behind.
func persist(st *store.Store, project *index.Project, graphs *relation.Graphs) error {
	batch, err := st.BeginBatch()
	if err != nil {
		return fmt.Errorf("starting batch: %w", err)
	}
	defer batch.Rollback()

	for seq, f := range project.Files {
		if _, err := batch.InsertFile(&store.File{
			Path:     f.Record.Path,
			Language: string(f.Record.Language),
			Size:     f.Record.Size,
			Lines:    f.Lines,
			Seq:      seq,
		}); err != nil {
			return fmt.Errorf("inserting file %s: %w", f.Record.Path, err)
		}
	}

	for _, name := range project.SymbolOrder {
		entry := project.Symbols[name]
		for _, def := range entry.Defs {
			if _, err := batch.InsertSymbol(&store.Symbol{
				Name: entry.Name,
				Kind: def.Kind,
				File: def.File,
				Seq:  entry.Seq,
			}); err != nil {
				return fmt.Errorf("inserting symbol %s: %w", entry.Name, err)
			}
		}
	}

	for _, fi := range graphs.Imports {
		for pos, edge := range fi.Edges {
			if err := batch.InsertImport(&store.Import{
				File:     fi.File,
				Target:   edge.Target,
				Kind:     string(edge.Kind),
				Position: pos,
			}); err != nil {
				return fmt.Errorf("inserting import %s -> %s: %w", fi.File, edge.Target, err)
			}
		}
	}

	for _, caller := range graphs.Calls {
		for _, call := range caller.Calls {
			if err := batch.InsertCallEdge(&store.CallEdge{
				Caller:      caller.Caller,
				CallerFiles: strings.Join(caller.Files, ", "),
				Callee:      call.Callee,
				CalleeFiles: strings.Join(call.Files, ", "),
			}); err != nil {
				return fmt.Errorf("inserting call edge %s -> %s: %w", caller.Caller, call.Callee, err)
			}
		}
	}

	if err := batch.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVar(&indexPath, "path", "", "path to the project directory to index")
	indexCmd.MarkFlagRequired("path")
}
