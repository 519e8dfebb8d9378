package translit

import (
	"embed"
	"io/fs"
)

// Bundled default block tables: Latin-1 supplement (x000), Latin
// Extended-A/B (x001), Greek (x003), Cyrillic (x004), and general
// punctuation with currency signs (x020). Deployments covering more
// scripts point the engine at an imported table directory instead.
//
//go:embed data/*.yaml
var defaultTables embed.FS

// DefaultSource returns the source backed by the bundled tables.
func DefaultSource() Source {
	sub, err := fs.Sub(defaultTables, "data")
	if err != nil {
		// Unreachable: "data" is embedded above.
		panic(err)
	}
	return NewFSSource(sub)
}

// Default returns an engine over the bundled tables.
func Default() *Engine {
	return NewEngine(DefaultSource())
}
