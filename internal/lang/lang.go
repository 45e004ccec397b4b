package lang

import (
	"path/filepath"
	"strings"
)

// Language identifies a source language recognized by the rule table.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Java       Language = "java"
	CSharp     Language = "csharp"
	Go         Language = "go"
	Rust       Language = "rust"
	C          Language = "c"
	CPP        Language = "cpp"
	Ruby       Language = "ruby"
	PHP        Language = "php"
	Kotlin     Language = "kotlin"
	Swift      Language = "swift"
	Unknown    Language = "unknown"
)

// extensions maps lowercased file extensions to languages.
var extensions = map[string]Language{
	".py":    Python,
	".pyw":   Python,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".mjs":   JavaScript,
	".cjs":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TypeScript,
	".java":  Java,
	".cs":    CSharp,
	".go":    Go,
	".rs":    Rust,
	".c":     C,
	".h":     C,
	".cpp":   CPP,
	".cc":    CPP,
	".cxx":   CPP,
	".hpp":   CPP,
	".rb":    Ruby,
	".rake":  Ruby,
	".php":   PHP,
	".kt":    Kotlin,
	".kts":   Kotlin,
	".swift": Swift,
}

// Detect maps a file path to a language tag. Files whose extension is not
// in the table classify as Unknown and are skipped by the indexer.
func Detect(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := extensions[ext]; ok {
		return l
	}
	return Unknown
}

// Known reports whether the language has a rule set.
func (l Language) Known() bool {
	_, ok := rules[l]
	return ok
}

// Rules returns the compiled rule set for a language. The second return
// value is false for languages without rules (including Unknown).
func Rules(l Language) (*RuleSet, bool) {
	rs, ok := rules[l]
	return rs, ok
}
