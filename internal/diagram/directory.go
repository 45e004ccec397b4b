package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Tree renders an ASCII diagram of the directory structure rooted at path.
// maxDepth limits recursion; 0 means unlimited. Entries are sorted within
// each directory.
func Tree(path string, maxDepth int) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %s is not a directory", path)
	}

	var b strings.Builder
	b.WriteString(filepath.Base(abs))
	b.WriteString("\n")
	writeTree(&b, abs, "", 1, maxDepth)
	return b.String(), nil
}

func writeTree(b *strings.Builder, dir, prefix string, depth, maxDepth int) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories render as leaves
		return
	}

	for i, entry := range entries {
		last := i == len(entries)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		b.WriteString(prefix + connector + entry.Name() + "\n")
		if entry.IsDir() {
			writeTree(b, filepath.Join(dir, entry.Name()), childPrefix, depth+1, maxDepth)
		}
	}
}
