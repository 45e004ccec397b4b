package scan

import (
	"bytes"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/abramin/crossref/internal/lang"
)

// FileRecord identifies one eligible source file. Path is project-relative
// with forward slashes and is the file's stable identity in every graph.
type FileRecord struct {
	Path     string
	Abs      string
	Language lang.Language
	Size     int64
}

// Definition is a named symbol extracted by a definition pattern.
type Definition struct {
	Name string
	Kind string
}

// Occurrence is a raw identifier found in a file. Call is set when the
// identifier is immediately followed by an opening parenthesis (spaces
// allowed), the call-shaped form used by the call-graph pass.
type Occurrence struct {
	Name string
	Line int
	Call bool
}

// Result holds the raw facts extracted from a single file. Scans are
// independent per file; the scanner holds no cross-file state.
type Result struct {
	Lines       int
	Imports     []string
	Defs        []Definition
	Occurrences []Occurrence
}

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Scan applies a language's rule set to file content and extracts imports,
// definitions and identifier occurrences. Binary-looking or non-UTF-8
// content yields an empty result rather than an error.
func Scan(content []byte, rs *lang.RuleSet) *Result {
	res := &Result{}
	if len(content) == 0 {
		return res
	}
	if bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content) {
		return res
	}

	text := string(content)
	res.Lines = countLines(text)

	for _, rule := range rs.Imports {
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			module := m[rule.ModuleGroup]
			if rule.SymbolGroup == 0 {
				res.Imports = append(res.Imports, module)
				continue
			}
			syms := identRe.FindAllString(m[rule.SymbolGroup], -1)
			if len(syms) == 0 {
				res.Imports = append(res.Imports, module)
				continue
			}
			for _, sym := range syms {
				res.Imports = append(res.Imports, joinTarget(module, sym))
			}
		}
	}

	seen := make(map[string]bool)
	for _, rule := range rs.Defs {
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			res.Defs = append(res.Defs, Definition{Name: name, Kind: rule.Kind})
		}
	}

	res.Occurrences = scanOccurrences(text)
	return res
}

// ScanFile reads and scans a single file. Oversized or unreadable files
// produce an empty result; the run never fails on one bad file.
func ScanFile(rec *FileRecord, maxSize int64, rs *lang.RuleSet) *Result {
	if maxSize > 0 && rec.Size > maxSize {
		return &Result{}
	}
	content, err := os.ReadFile(rec.Abs)
	if err != nil {
		return &Result{}
	}
	return Scan(content, rs)
}

// scanOccurrences extracts every identifier token with its line number and
// call-shaped flag. This pass is language-independent.
func scanOccurrences(text string) []Occurrence {
	var occs []Occurrence
	line := 1
	cursor := 0
	for _, loc := range identRe.FindAllStringIndex(text, -1) {
		for i := cursor; i < loc[0]; i++ {
			if text[i] == '\n' {
				line++
			}
		}
		cursor = loc[0]

		occs = append(occs, Occurrence{
			Name: text[loc[0]:loc[1]],
			Line: line,
			Call: isCallShaped(text, loc[1]),
		})
	}
	return occs
}

// isCallShaped reports whether an opening parenthesis follows position pos,
// allowing intervening spaces or tabs. This deliberately matches control-flow
// keywords like "if (": the engine is approximate and the report tolerates
// such tokens when they collide with a defined symbol name.
func isCallShaped(text string, pos int) bool {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos < len(text) && text[pos] == '('
}

func joinTarget(module, sym string) string {
	if len(module) > 0 && module[len(module)-1] == '.' {
		return module + sym
	}
	return module + "." + sym
}

func countLines(text string) int {
	n := 1 + bytes.Count([]byte(text), []byte("\n"))
	if len(text) > 0 && text[len(text)-1] == '\n' {
		n--
	}
	return n
}
