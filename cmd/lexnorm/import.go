package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/lexnorm/pkg/importer"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	source := fs.String("source", "", "adapter ID to import (e.g. uni-latin)")
	all := fs.Bool("all", false, "import all available sources")
	check := fs.Bool("check", false, "check source availability, import nothing")
	tablesDir := fs.String("tables-dir", "tables", "output directory for block tables")
	fs.Parse(args)

	sourcesDBPath := filepath.Join(*tablesDir, "sources.db")
	if err := os.MkdirAll(*tablesDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tables dir: %v\n", err)
		os.Exit(1)
	}
	sdb, err := importer.OpenSourceDB(sourcesDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sources.db: %v\n", err)
		os.Exit(1)
	}
	defer sdb.Close()

	if err := sdb.Seed(importer.All()); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding sources: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	if *check {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		importer.NewChecker(sdb, logger).CheckAll(ctx)
		return
	}

	if !*all && *source == "" {
		fmt.Println("Available sources:")
		fmt.Println()
		sources, _ := sdb.ListSources()
		for _, src := range sources {
			status := ""
			if src.LastStatus != nil {
				status = fmt.Sprintf("  [%d]", *src.LastStatus)
			}
			fmt.Printf("  %-15s  %s%s\n", src.AdapterID, src.Description, status)
		}
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  lexnorm import --source <id> [--tables-dir <dir>]")
		fmt.Println("  lexnorm import --all [--tables-dir <dir>]")
		return
	}

	if *all {
		for _, a := range importer.All() {
			if err := runImport(ctx, sdb, a, *tablesDir); err != nil {
				fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", a.ID(), err)
				continue
			}
			fmt.Printf("[%s] OK\n", a.ID())
		}
		return
	}

	a, err := importer.Get(*source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Println("\nAvailable sources:")
		for _, a := range importer.All() {
			fmt.Printf("  %s\n", a.ID())
		}
		os.Exit(1)
	}

	if err := runImport(ctx, sdb, a, *tablesDir); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", a.ID(), err)
		os.Exit(1)
	}
	fmt.Printf("[%s] OK -> %s/\n", a.ID(), *tablesDir)
}

func runImport(ctx context.Context, sdb *importer.SourceDB, a importer.Adapter, tablesDir string) error {
	url, err := sdb.GetURL(a.ID())
	if err != nil {
		return err
	}
	fmt.Printf("[%s] Importing...\n", a.ID())
	blocks, err := a.Import(ctx, url, tablesDir)
	if err != nil {
		return err
	}
	return sdb.RecordImport(a.ID(), blocks)
}
