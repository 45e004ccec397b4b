package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/abramin/crossref/internal/config"
	"github.com/abramin/crossref/internal/lang"
)

// Walker enumerates the eligible files of a project in deterministic
// traversal order: depth-first, entries sorted within each directory.
// That order is the order the report renders in, so it must be stable.
type Walker struct {
	cfg     *config.Config
	root    string
	ignorer *ignore.GitIgnore
}

// NewWalker creates a walker rooted at the given project directory.
func NewWalker(cfg *config.Config, root string) (*Walker, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("invalid root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", root)
	}

	w := &Walker{cfg: cfg, root: abs}
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(abs, ".gitignore")); err == nil {
		w.ignorer = gi
	}
	return w, nil
}

// Root returns the absolute project root.
func (w *Walker) Root() string {
	return w.root
}

// Walk returns the ordered file records for every eligible file: known
// language, not excluded, not gitignored, and within the size cutoff.
// The list is capped at the configured max file count.
func (w *Walker) Walk() ([]*FileRecord, error) {
	var records []*FileRecord
	if err := w.walkDir(w.root, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (w *Walker) walkDir(abs, rel string, records *[]*FileRecord) error {
	entries, err := os.ReadDir(abs)
	if err != nil {
		// Unreadable directories are skipped, not fatal
		slog.Debug("skipping unreadable directory", "dir", abs, "err", err)
		return nil
	}

	for _, entry := range entries {
		if w.cfg.MaxFiles > 0 && len(*records) >= w.cfg.MaxFiles {
			return nil
		}

		entryAbs := filepath.Join(abs, entry.Name())
		entryRel := entry.Name()
		if rel != "" {
			entryRel = rel + "/" + entry.Name()
		}

		if entry.IsDir() {
			if w.cfg.IsExcludedDir(entry.Name()) {
				continue
			}
			if w.ignorer != nil && w.ignorer.MatchesPath(entryRel+"/") {
				continue
			}
			if err := w.walkDir(entryAbs, entryRel, records); err != nil {
				return err
			}
			continue
		}

		if w.cfg.IsExcludedFile(entry.Name()) {
			continue
		}
		if w.ignorer != nil && w.ignorer.MatchesPath(entryRel) {
			continue
		}

		language := lang.Detect(entry.Name())
		if !language.Known() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Debug("skipping unreadable file", "file", entryRel, "err", err)
			continue
		}
		if w.cfg.MaxFileSize > 0 && info.Size() > w.cfg.MaxFileSize {
			slog.Debug("skipping oversized file", "file", entryRel, "size", info.Size())
			continue
		}

		*records = append(*records, &FileRecord{
			Path:     entryRel,
			Abs:      entryAbs,
			Language: language,
			Size:     info.Size(),
		})
	}
	return nil
}
