package relation

import "strings"

// Glyphs and indent steps for the tree report. Fixed-width so the output
// is byte-stable across runs.
const (
	corner = "└── "

	indentEntry = "  "
	indentChild = "      "
	indentLeaf  = "          "
)

// Render turns the relation graphs into the ASCII tree report. It is a
// pure function of the graphs: entries render in the order they were
// discovered, sections above the requested depth are omitted entirely, and
// headings with no children are dropped rather than rendered empty. The
// "File Dependencies:" header is always present.
func Render(g *Graphs) string {
	var b strings.Builder

	b.WriteString("File Dependencies:\n")
	for _, fi := range g.Imports {
		b.WriteString("\n")
		b.WriteString(fi.File + "\n")
		b.WriteString(indentEntry + corner + "imports from:\n")
		for _, edge := range fi.Edges {
			b.WriteString(indentChild + corner + edge.Target + " (" + string(edge.Kind) + ")\n")
		}
	}

	if g.Depth >= 2 {
		b.WriteString("\nSymbol Usage Across Files:\n")
		for _, fu := range g.Usage {
			b.WriteString("\n")
			b.WriteString(fu.File + " defines:\n")
			for _, su := range fu.Symbols {
				b.WriteString(indentEntry + corner + su.Symbol + "\n")
				b.WriteString(indentChild + corner + "used by:\n")
				for _, user := range su.UsedBy {
					b.WriteString(indentLeaf + corner + user + "\n")
				}
			}
		}
	}

	if g.Depth >= 3 {
		b.WriteString("\nFunction Call Graph:\n")
		for _, cc := range g.Calls {
			b.WriteString("\n")
			b.WriteString(cc.Caller + " (in " + strings.Join(cc.Files, ", ") + ")\n")
			for _, call := range cc.Calls {
				b.WriteString(indentEntry + corner + "calls " + call.Callee + " (in " + strings.Join(call.Files, ", ") + ")\n")
			}
		}
	}

	return b.String()
}
