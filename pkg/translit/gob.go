package translit

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadBlockGob deserializes a compiled block table.
func loadBlockGob(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gob block: %w", err)
	}
	defer f.Close()

	var table []string
	if err := gob.NewDecoder(f).Decode(&table); err != nil {
		return nil, fmt.Errorf("decode gob block: %w", err)
	}
	return table, nil
}

// SaveBlockGob serializes a block table to a gob file at path. Used by
// the importer when compiling downloaded tables.
func SaveBlockGob(table []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob block: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(table); err != nil {
		return fmt.Errorf("encode gob block: %w", err)
	}
	return nil
}
