package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abramin/crossref/internal/config"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIndexerRun(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "models.py", "class User:\n    def save(self):\n        pass\n")
	writeFixture(t, root, "views.py", "from models import User\n\ndef render():\n    u = User()\n    u.save()\n")

	idx := NewIndexer(config.Default(), root)
	p, err := idx.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(p.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(p.Files))
	}
	if p.Files[0].Record.Path != "models.py" || p.Files[1].Record.Path != "views.py" {
		t.Errorf("unexpected file order: %s, %s", p.Files[0].Record.Path, p.Files[1].Record.Path)
	}

	user, ok := p.Symbol("User")
	if !ok {
		t.Fatal("symbol User not indexed")
	}
	if len(user.Defs) != 1 || user.Defs[0].File != "models.py" || user.Defs[0].Kind != "class" {
		t.Errorf("unexpected User defs: %+v", user.Defs)
	}

	if _, ok := p.Symbol("render"); !ok {
		t.Error("symbol render not indexed")
	}
}

func TestIndexerDuplicateSymbolAccumulates(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "a.py", "def helper():\n    pass\n")
	writeFixture(t, root, "b.py", "def helper():\n    pass\n")

	idx := NewIndexer(config.Default(), root)
	p, err := idx.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	helper, ok := p.Symbol("helper")
	if !ok {
		t.Fatal("symbol helper not indexed")
	}
	files := helper.Files()
	if len(files) != 2 || files[0] != "a.py" || files[1] != "b.py" {
		t.Errorf("got defining files %v, want [a.py b.py]", files)
	}
}

func TestIndexerSymbolOrderFollowsDiscovery(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "first.py", "def zebra():\n    pass\n\ndef apple():\n    pass\n")
	writeFixture(t, root, "second.py", "def mango():\n    pass\n")

	idx := NewIndexer(config.Default(), root)
	p, err := idx.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"zebra", "apple", "mango"}
	if len(p.SymbolOrder) != len(want) {
		t.Fatalf("got symbol order %v, want %v", p.SymbolOrder, want)
	}
	for i := range want {
		if p.SymbolOrder[i] != want[i] {
			t.Errorf("SymbolOrder[%d] = %q, want %q", i, p.SymbolOrder[i], want[i])
		}
	}
}

func TestIndexerCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "a.py", "def helper():\n    pass\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := NewIndexer(config.Default(), root)
	if _, err := idx.Run(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}
