package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abramin/crossref/internal/config"
	"github.com/abramin/crossref/internal/lang"
)

func TestOutlineSingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "models.py")
	src := `import os
from db import connect

class User:
    def save(self):
        pass

def migrate():
    pass
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Outline(config.Default(), path, lang.Unknown)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	want := `Code Diagram for File: models.py
==================================================

Imports:
  └── os
  └── db.connect

Classes:
  └── User

Functions:
  └── save
  └── migrate
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestOutlineDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.py"), []byte("def run():\n    pass\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.js"), []byte("function init() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Outline(config.Default(), root, lang.Unknown)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}

	if !strings.HasPrefix(got, "Code Diagram for Directory: "+filepath.Base(root)+"\n") {
		t.Errorf("missing directory header:\n%s", got)
	}
	if !strings.Contains(got, "\nFile: a.py (python)\n") {
		t.Errorf("missing a.py section:\n%s", got)
	}
	if !strings.Contains(got, "\nFile: b.js (javascript)\n") {
		t.Errorf("missing b.js section:\n%s", got)
	}
	if !strings.Contains(got, "  └── run\n") || !strings.Contains(got, "  └── init\n") {
		t.Errorf("missing definitions:\n%s", got)
	}
}

func TestOutlineLanguageOverride(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "script.txt")
	if err := os.WriteFile(path, []byte("def run():\n    pass\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Outline(config.Default(), path, lang.Python)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if !strings.Contains(got, "Functions:\n  └── run\n") {
		t.Errorf("override to python not applied:\n%s", got)
	}

	got, err = Outline(config.Default(), path, lang.Unknown)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if !strings.Contains(got, "parsing not implemented") {
		t.Errorf("unknown language should report unsupported:\n%s", got)
	}
}
