package lang

import "regexp"

// ImportRule extracts import targets from source text. ModuleGroup is the
// capture group holding the module/target spec. If SymbolGroup is non-zero,
// that group holds a symbol list and each identifier in it yields a
// "module.symbol" target, mirroring from/import style statements.
type ImportRule struct {
	Pattern     *regexp.Regexp
	ModuleGroup int
	SymbolGroup int
}

// DefRule extracts symbol definitions of a single kind.
type DefRule struct {
	Pattern *regexp.Regexp
	Kind    string
}

// RuleSet holds the compiled patterns for one language. The rule table is
// declarative: adding a language means adding an entry here, never touching
// the scanner.
type RuleSet struct {
	Imports []ImportRule
	Defs    []DefRule
}

var rules = map[Language]*RuleSet{
	Python: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)`), ModuleGroup: 1},
			{Pattern: regexp.MustCompile(`(?m)^\s*from\s+([\w.]+)\s+import\s+([^\n(]+)`), ModuleGroup: 1, SymbolGroup: 2},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)^\s*class\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)^\s*def\s+(\w+)`), Kind: "function"},
		},
	},
	JavaScript: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`), ModuleGroup: 2, SymbolGroup: 1},
			{Pattern: regexp.MustCompile(`import\s+\*\s+as\s+(\w+)\s+from\s+['"]([^'"]+)['"]`), ModuleGroup: 2, SymbolGroup: 1},
			{Pattern: regexp.MustCompile(`import\s+(\w+)\s+from\s+['"]([^'"]+)['"]`), ModuleGroup: 2, SymbolGroup: 1},
			{Pattern: regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bclass\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\bfunction\s+(\w+)`), Kind: "function"},
			{Pattern: regexp.MustCompile(`(?m)\b(?:const|let|var)\s+(\w+)\s*=`), Kind: "binding"},
		},
	},
	TypeScript: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`), ModuleGroup: 2, SymbolGroup: 1},
			{Pattern: regexp.MustCompile(`import\s+\*\s+as\s+(\w+)\s+from\s+['"]([^'"]+)['"]`), ModuleGroup: 2, SymbolGroup: 1},
			{Pattern: regexp.MustCompile(`import\s+(\w+)\s+from\s+['"]([^'"]+)['"]`), ModuleGroup: 2, SymbolGroup: 1},
			{Pattern: regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bclass\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\binterface\s+(\w+)`), Kind: "interface"},
			{Pattern: regexp.MustCompile(`(?m)\benum\s+(\w+)`), Kind: "enum"},
			{Pattern: regexp.MustCompile(`(?m)\btype\s+(\w+)\s*=`), Kind: "type"},
			{Pattern: regexp.MustCompile(`(?m)\bfunction\s+(\w+)`), Kind: "function"},
			{Pattern: regexp.MustCompile(`(?m)\b(?:const|let|var)\s+(\w+)\s*=`), Kind: "binding"},
		},
	},
	Java: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`import\s+(?:static\s+)?([\w.*]+)\s*;`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bclass\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\binterface\s+(\w+)`), Kind: "interface"},
			{Pattern: regexp.MustCompile(`(?m)\benum\s+(\w+)`), Kind: "enum"},
			{Pattern: regexp.MustCompile(`(?m)(?:public|protected|private)\s+(?:static\s+)?[\w<>\[\],\s]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|throws)`), Kind: "method"},
		},
	},
	CSharp: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`using\s+([\w.]+)\s*;`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bclass\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\binterface\s+(\w+)`), Kind: "interface"},
			{Pattern: regexp.MustCompile(`(?m)\bstruct\s+(\w+)`), Kind: "struct"},
			{Pattern: regexp.MustCompile(`(?m)\benum\s+(\w+)`), Kind: "enum"},
			{Pattern: regexp.MustCompile(`(?m)\brecord\s+(\w+)`), Kind: "record"},
			// Deliberately loose: matches any "name (args) {" shape, which also
			// captures control-flow keywords like if/while. The relation report
			// tolerates such tokens rather than filtering per-language keywords.
			{Pattern: regexp.MustCompile(`(?m)[\w<>\[\],.]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|=>)`), Kind: "method"},
		},
	},
	Go: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`import\s+(?:[\w.]+\s+)?"([^"]+)"`), ModuleGroup: 1},
			{Pattern: regexp.MustCompile(`(?m)^\s+(?:[\w.]+\s+)?"([^"]+)"$`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)^func\s+(?:\([^)]*\)\s*)?(\w+)\s*\(`), Kind: "function"},
			{Pattern: regexp.MustCompile(`(?m)^type\s+(\w+)`), Kind: "type"},
		},
	},
	Rust: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`use\s+([^;]+);`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?:pub\s+)?struct\s+(\w+)`), Kind: "struct"},
			{Pattern: regexp.MustCompile(`(?:pub\s+)?enum\s+(\w+)`), Kind: "enum"},
			{Pattern: regexp.MustCompile(`(?:pub\s+)?trait\s+(\w+)`), Kind: "trait"},
			{Pattern: regexp.MustCompile(`(?:pub(?:\([^)]*\))?\s+)?fn\s+(\w+)`), Kind: "function"},
			{Pattern: regexp.MustCompile(`(?:pub\s+)?mod\s+(\w+)`), Kind: "module"},
		},
	},
	C: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`#include\s*[<"]([^>"]+)[>"]`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bstruct\s+(\w+)\s*\{`), Kind: "struct"},
			{Pattern: regexp.MustCompile(`(?m)^[\w*\s]+?\b(\w+)\s*\([^)]*\)\s*\{`), Kind: "function"},
		},
	},
	CPP: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`#include\s*[<"]([^>"]+)[>"]`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bnamespace\s+(\w+)`), Kind: "namespace"},
			{Pattern: regexp.MustCompile(`(?m)\b(?:class|struct)\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)^[\w:*&\s<>]+?\b(\w+)\s*\([^)]*\)\s*\{`), Kind: "function"},
		},
	},
	Ruby: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`require(?:_relative)?\s+['"]([^'"]+)['"]`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)^\s*class\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)^\s*module\s+(\w+)`), Kind: "module"},
			{Pattern: regexp.MustCompile(`(?m)^\s*def\s+(\w+)`), Kind: "method"},
		},
	},
	PHP: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`(?:require|include)(?:_once)?\s*\(?\s*['"]([^'"]+)['"]`), ModuleGroup: 1},
			{Pattern: regexp.MustCompile(`use\s+([\w\\]+)\s*;`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\bclass\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\binterface\s+(\w+)`), Kind: "interface"},
			{Pattern: regexp.MustCompile(`(?m)\btrait\s+(\w+)`), Kind: "trait"},
			{Pattern: regexp.MustCompile(`(?m)\bfunction\s+(\w+)`), Kind: "function"},
		},
	},
	Kotlin: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`import\s+([\w.]+)`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\b(?:class|object|interface)\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\bfun\s+(\w+)`), Kind: "function"},
		},
	},
	Swift: {
		Imports: []ImportRule{
			{Pattern: regexp.MustCompile(`import\s+(\w+)`), ModuleGroup: 1},
		},
		Defs: []DefRule{
			{Pattern: regexp.MustCompile(`(?m)\b(?:class|struct|enum|protocol)\s+(\w+)`), Kind: "class"},
			{Pattern: regexp.MustCompile(`(?m)\bfunc\s+(\w+)`), Kind: "function"},
		},
	},
}
