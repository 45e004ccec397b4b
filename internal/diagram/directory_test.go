package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkFixture(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		abs := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(abs, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestTree(t *testing.T) {
	root := t.TempDir()
	mkFixture(t, root, "src/main.py", "src/utils.py", "README.md")

	got, err := Tree(root, 0)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}

	want := filepath.Base(root) + `
├── README.md
└── src
    ├── main.py
    └── utils.py
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeMaxDepth(t *testing.T) {
	root := t.TempDir()
	mkFixture(t, root, "a/b/c/deep.py")

	got, err := Tree(root, 2)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if !strings.Contains(got, "└── b\n") {
		t.Errorf("depth-2 entry missing:\n%s", got)
	}
	if strings.Contains(got, "── c\n") || strings.Contains(got, "deep.py") {
		t.Errorf("entries below max depth should be cut off:\n%s", got)
	}
}

func TestTreeNestedPrefix(t *testing.T) {
	root := t.TempDir()
	mkFixture(t, root, "pkg/a.py", "pkg/sub/b.py", "z.py")

	got, err := Tree(root, 0)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	// pkg is not the last entry, so its children carry the vertical rune.
	if !strings.Contains(got, "│   ├── a.py\n") {
		t.Errorf("nested prefix missing:\n%s", got)
	}
	if !strings.Contains(got, "│   └── sub\n") {
		t.Errorf("nested dir entry missing:\n%s", got)
	}
}

func TestTreeRejectsFile(t *testing.T) {
	root := t.TempDir()
	mkFixture(t, root, "only.py")

	if _, err := Tree(filepath.Join(root, "only.py"), 0); err == nil {
		t.Error("expected error for non-directory path")
	}
}
