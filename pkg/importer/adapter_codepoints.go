package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/hazyhaar/lexnorm/pkg/translit"
)

const blockSize = 256

func init() {
	Register(&codepointCSV{
		id:          "uni-latin",
		description: "Latin supplement and extended transliteration tables",
		url:         "https://data.hazyhaar.net/lexnorm/uni-latin.csv",
		license:     "CC0",
	})
	Register(&codepointCSV{
		id:          "uni-cyrillic",
		description: "Cyrillic and Greek transliteration tables",
		url:         "https://data.hazyhaar.net/lexnorm/uni-cyrillic.csv",
		license:     "CC0",
	})
}

// codepointCSV imports a two-column CSV of hex codepoint and ASCII
// replacement, grouping rows into 256-entry block tables.
type codepointCSV struct {
	id          string
	description string
	url         string
	license     string
	encoding    string // empty means UTF-8
}

func (a *codepointCSV) ID() string          { return a.id }
func (a *codepointCSV) Description() string { return a.description }
func (a *codepointCSV) DefaultURL() string  { return a.url }
func (a *codepointCSV) License() string     { return a.license }

func (a *codepointCSV) Import(ctx context.Context, sourceURL, tablesDir string) (int, error) {
	if err := os.MkdirAll(tablesDir, 0o755); err != nil {
		return 0, fmt.Errorf("create tables dir: %w", err)
	}

	tmp, err := os.CreateTemp("", a.id+"-*.csv")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := downloadFile(ctx, sourceURL, tmpPath); err != nil {
		return 0, err
	}

	blocks, err := a.parse(tmpPath)
	if err != nil {
		return 0, err
	}
	if len(blocks) == 0 {
		return 0, fmt.Errorf("source %s: no usable rows", a.id)
	}

	for section, table := range blocks {
		path := filepath.Join(tablesDir, translit.BlockName(section)+".gob")
		if err := translit.SaveBlockGob(table, path); err != nil {
			return 0, fmt.Errorf("block %s: %w", translit.BlockName(section), err)
		}
	}

	err = writeManifest(tablesDir, Manifest{
		Source:      a.id,
		SourceURL:   sourceURL,
		License:     a.license,
		Blocks:      len(blocks),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return 0, err
	}
	return len(blocks), nil
}

// parse reads the CSV into per-section tables. Rows are
// "codepoint,replacement" with the codepoint in hex ("00C0" or
// "U+00C0"). Unparsable rows are skipped, not fatal.
func (a *codepointCSV) parse(path string) (map[int][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	// Transcode non-UTF-8 sources.
	var reader io.Reader = f
	if a.encoding != "" {
		e, err := htmlindex.Get(a.encoding)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", a.encoding, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	r := csv.NewReader(reader)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	blocks := make(map[int][]string)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 {
			continue
		}

		hex := strings.TrimPrefix(strings.TrimSpace(record[0]), "U+")
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || cp > 0xEFFFF {
			continue
		}

		section := int(cp) >> 8
		table, ok := blocks[section]
		if !ok {
			table = make([]string, blockSize)
			blocks[section] = table
		}
		table[int(cp)%blockSize] = record[1]
	}
	return blocks, nil
}
