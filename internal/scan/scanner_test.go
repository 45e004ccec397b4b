package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abramin/crossref/internal/lang"
)

func mustRules(t *testing.T, l lang.Language) *lang.RuleSet {
	t.Helper()
	rs, ok := lang.Rules(l)
	if !ok {
		t.Fatalf("no rules for %q", l)
	}
	return rs
}

func TestScanPythonImports(t *testing.T) {
	src := []byte(`import os
import os.path
from utils import helper, format_name
from . import config
`)
	res := Scan(src, mustRules(t, lang.Python))

	want := []string{"os", "os.path", "utils.helper", "utils.format_name", ".config"}
	if len(res.Imports) != len(want) {
		t.Fatalf("got %d imports %v, want %d", len(res.Imports), res.Imports, len(want))
	}
	for i, target := range want {
		if res.Imports[i] != target {
			t.Errorf("import[%d] = %q, want %q", i, res.Imports[i], target)
		}
	}
}

func TestScanPythonDefinitions(t *testing.T) {
	src := []byte(`class UserService:
    def get_user(self):
        pass

    def get_user(self, id):
        pass

def helper():
    pass
`)
	res := Scan(src, mustRules(t, lang.Python))

	want := []Definition{
		{Name: "UserService", Kind: "class"},
		{Name: "get_user", Kind: "function"},
		{Name: "helper", Kind: "function"},
	}
	if len(res.Defs) != len(want) {
		t.Fatalf("got %d defs %v, want %d", len(res.Defs), res.Defs, len(want))
	}
	for i, d := range want {
		if res.Defs[i] != d {
			t.Errorf("def[%d] = %+v, want %+v", i, res.Defs[i], d)
		}
	}
}

func TestScanJavaScriptImportForms(t *testing.T) {
	src := []byte(`import { render, mount } from './ui';
import * as api from 'axios';
import React from 'react';
const fs = require('fs');
`)
	res := Scan(src, mustRules(t, lang.JavaScript))

	want := []string{"./ui.render", "./ui.mount", "axios.api", "react.React", "fs"}
	if len(res.Imports) != len(want) {
		t.Fatalf("got imports %v, want %v", res.Imports, want)
	}
	for i, target := range want {
		if res.Imports[i] != target {
			t.Errorf("import[%d] = %q, want %q", i, res.Imports[i], target)
		}
	}
}

func TestScanOccurrenceLinesAndCallShape(t *testing.T) {
	src := []byte("alpha\nbeta ()\ngamma(1)\n")
	res := Scan(src, mustRules(t, lang.Python))

	want := []Occurrence{
		{Name: "alpha", Line: 1, Call: false},
		{Name: "beta", Line: 2, Call: true},
		{Name: "gamma", Line: 3, Call: true},
	}
	if len(res.Occurrences) != len(want) {
		t.Fatalf("got %d occurrences %v, want %d", len(res.Occurrences), res.Occurrences, len(want))
	}
	for i, occ := range want {
		if res.Occurrences[i] != occ {
			t.Errorf("occurrence[%d] = %+v, want %+v", i, res.Occurrences[i], occ)
		}
	}
	if res.Lines != 3 {
		t.Errorf("Lines = %d, want 3", res.Lines)
	}
}

// Control-flow keywords followed by a parenthesis count as call-shaped
// occurrences. They only surface in reports when a file defines a symbol
// with the same name; that collision is tolerated, not filtered.
func TestKeywordOccurrenceIsCallShaped(t *testing.T) {
	src := []byte("if (x > 0) { return Process(x); }\n")
	res := Scan(src, mustRules(t, lang.CSharp))

	var ifOcc, processOcc *Occurrence
	for i := range res.Occurrences {
		switch res.Occurrences[i].Name {
		case "if":
			ifOcc = &res.Occurrences[i]
		case "Process":
			processOcc = &res.Occurrences[i]
		}
	}
	if ifOcc == nil || !ifOcc.Call {
		t.Errorf("expected call-shaped occurrence for %q, got %+v", "if", ifOcc)
	}
	if processOcc == nil || !processOcc.Call {
		t.Errorf("expected call-shaped occurrence for %q, got %+v", "Process", processOcc)
	}
}

func TestScanBinaryContent(t *testing.T) {
	src := []byte{'i', 'm', 'p', 0x00, 'o', 'r', 't'}
	res := Scan(src, mustRules(t, lang.Python))

	if res.Lines != 0 || len(res.Imports) != 0 || len(res.Defs) != 0 || len(res.Occurrences) != 0 {
		t.Errorf("binary content should yield empty result, got %+v", res)
	}
}

func TestScanInvalidUTF8(t *testing.T) {
	src := []byte{0xff, 0xfe, 'i', 'm', 'p', 'o', 'r', 't'}
	res := Scan(src, mustRules(t, lang.Python))

	if len(res.Occurrences) != 0 {
		t.Errorf("invalid UTF-8 should yield empty result, got %+v", res)
	}
}

func TestScanFileOversized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.py")
	if err := os.WriteFile(path, []byte("import os\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := &FileRecord{Path: "big.py", Abs: path, Language: lang.Python, Size: 10}
	res := ScanFile(rec, 5, mustRules(t, lang.Python))
	if len(res.Imports) != 0 {
		t.Errorf("oversized file should yield empty result, got %v", res.Imports)
	}

	res = ScanFile(rec, 1024, mustRules(t, lang.Python))
	if len(res.Imports) != 1 || res.Imports[0] != "os" {
		t.Errorf("got imports %v, want [os]", res.Imports)
	}
}

func TestScanFileMissing(t *testing.T) {
	rec := &FileRecord{Path: "gone.py", Abs: filepath.Join(t.TempDir(), "gone.py"), Language: lang.Python, Size: 1}
	res := ScanFile(rec, 1024, mustRules(t, lang.Python))
	if len(res.Occurrences) != 0 {
		t.Errorf("missing file should yield empty result, got %+v", res)
	}
}
