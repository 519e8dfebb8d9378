package translit

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source serves per-block replacement tables. Block returns an error
// when the section has no table resource; the engine caches that as a
// permanent miss.
type Source interface {
	Block(section int) ([]string, error)
}

// BlockName returns the resource stem for a section index,
// hexadecimal zero-padded to three digits (0x1f -> "x01f").
func BlockName(section int) string {
	return fmt.Sprintf("x%03x", section)
}

// FSSource reads YAML block tables from an fs.FS, typically the
// embedded defaults.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource builds a source over fsys. Table files are named
// <block>.yaml at the root of fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Block(section int) ([]string, error) {
	name := BlockName(section) + ".yaml"
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", name, err)
	}
	return decodeYAMLBlock(name, data)
}

// DirSource reads block tables from a directory. Compiled .gob files
// take priority over .yaml, mirroring how imported tables are laid
// out next to their source form.
type DirSource struct {
	dir string
}

// NewDirSource builds a source over an on-disk table directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Block(section int) ([]string, error) {
	stem := filepath.Join(s.dir, BlockName(section))

	gobPath := stem + ".gob"
	if _, err := os.Stat(gobPath); err == nil {
		return loadBlockGob(gobPath)
	}

	yamlPath := stem + ".yaml"
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", BlockName(section), err)
	}
	return decodeYAMLBlock(yamlPath, data)
}

// decodeYAMLBlock parses a block table: a YAML sequence of replacement
// strings, one per codepoint position.
func decodeYAMLBlock(name string, data []byte) ([]string, error) {
	var table []string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse block %s: %w", name, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("block %s: empty table", name)
	}
	return table, nil
}
