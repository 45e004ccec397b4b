package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abramin/crossref/internal/config"
	"github.com/abramin/crossref/internal/lang"
	"github.com/abramin/crossref/internal/scan"
)

// kindHeadings maps definition kinds to their outline section headings.
var kindHeadings = map[string]string{
	"class":     "Classes:",
	"interface": "Interfaces:",
	"struct":    "Structs:",
	"enum":      "Enums:",
	"record":    "Records:",
	"trait":     "Traits:",
	"type":      "Types:",
	"function":  "Functions:",
	"method":    "Methods:",
	"module":    "Modules:",
	"namespace": "Namespaces:",
	"binding":   "Bindings:",
}

// Outline renders a per-file structure listing for a file or every
// eligible file in a directory. langOverride forces a language instead of
// extension detection; pass lang.Unknown to auto-detect.
func Outline(cfg *config.Config, path string, langOverride lang.Language) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	var b strings.Builder
	if info.IsDir() {
		b.WriteString("Code Diagram for Directory: " + filepath.Base(abs) + "\n")
		b.WriteString(strings.Repeat("=", 50) + "\n")

		walker, err := scan.NewWalker(cfg, abs)
		if err != nil {
			return "", err
		}
		records, err := walker.Walk()
		if err != nil {
			return "", err
		}
		for _, rec := range records {
			language := rec.Language
			if langOverride != lang.Unknown {
				language = langOverride
			}
			b.WriteString("\nFile: " + rec.Path + " (" + string(language) + ")\n")
			b.WriteString(strings.Repeat("-", 50) + "\n")
			writeStructure(&b, rec, cfg.MaxFileSize, language)
		}
		return b.String(), nil
	}

	language := langOverride
	if language == lang.Unknown {
		language = lang.Detect(abs)
	}
	b.WriteString("Code Diagram for File: " + filepath.Base(abs) + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	rec := &scan.FileRecord{Path: filepath.Base(abs), Abs: abs, Language: language, Size: info.Size()}
	writeStructure(&b, rec, cfg.MaxFileSize, language)
	return b.String(), nil
}

func writeStructure(b *strings.Builder, rec *scan.FileRecord, maxSize int64, language lang.Language) {
	rules, ok := lang.Rules(language)
	if !ok {
		b.WriteString("Language '" + string(language) + "' parsing not implemented.\n")
		return
	}

	res := scan.ScanFile(rec, maxSize, rules)

	if len(res.Imports) > 0 {
		b.WriteString("\nImports:\n")
		for _, imp := range res.Imports {
			b.WriteString("  └── " + imp + "\n")
		}
	}

	// Group definitions by kind, keeping kinds in first-appearance order.
	var kinds []string
	byKind := make(map[string][]string)
	for _, def := range res.Defs {
		if _, ok := byKind[def.Kind]; !ok {
			kinds = append(kinds, def.Kind)
		}
		byKind[def.Kind] = append(byKind[def.Kind], def.Name)
	}

	for _, kind := range kinds {
		heading, ok := kindHeadings[kind]
		if !ok {
			heading = strings.ToUpper(kind[:1]) + kind[1:] + "s:"
		}
		b.WriteString("\n" + heading + "\n")
		for _, name := range byKind[kind] {
			b.WriteString("  └── " + name + "\n")
		}
	}
}
