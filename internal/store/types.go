package store

// FileID is a type-safe identifier for file rows.
type FileID int64

// SymbolID is a type-safe identifier for symbol definition rows.
type SymbolID int64

// File represents one indexed source file.
type File struct {
	ID       FileID `json:"id"`
	Path     string `json:"path"`
	Language string `json:"language"`
	Size     int64  `json:"size"`
	Lines    int    `json:"lines"`
	Seq      int    `json:"seq"` // discovery order
}

// Symbol represents one symbol definition site.
type Symbol struct {
	ID   SymbolID `json:"id"`
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	File string   `json:"file"`
	Seq  int      `json:"seq"` // insertion order of the name
}

// Import represents one classified import edge from a file.
type Import struct {
	File     string `json:"file"`
	Target   string `json:"target"`
	Kind     string `json:"kind"` // local or external
	Position int    `json:"position"`
}

// CallEdge represents one resolved call from a defined symbol to another.
type CallEdge struct {
	Caller      string `json:"caller"`
	CallerFiles string `json:"caller_files"`
	Callee      string `json:"callee"`
	CalleeFiles string `json:"callee_files"`
}
