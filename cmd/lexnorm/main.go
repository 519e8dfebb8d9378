package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/lexnorm/pkg/api"
	"github.com/hazyhaar/lexnorm/pkg/pipeline"
	"github.com/hazyhaar/lexnorm/pkg/rules"
	"github.com/hazyhaar/lexnorm/pkg/translit"
)

const version = "0.3.0"

type config struct {
	Addr       string `yaml:"addr"`
	TablesDir  string `yaml:"tables_dir"` // empty = bundled tables
	Pipeline   string `yaml:"pipeline"`   // optional pipeline spec file
	Workers    int    `yaml:"workers"`
	EdgeSpacer bool   `yaml:"edge_spacer"`
	Underscore bool   `yaml:"underscore_digits"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "normalize":
		cmdNormalize(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: lexnorm <command>

Commands:
  serve      Start the HTTP server
  mcp        Serve the MCP tools over stdio
  normalize  Normalize stdin to stdout, one document per line
  import     Download and compile transliteration tables
`)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig(*cfgPath, logger)

	pipe, eng, err := buildPipeline(cfg)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}
	svc := api.NewService(pipe, eng, cfg.Workers)
	logger.Info("pipeline ready", "stages", pipe.Stages())

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(svc),
	}

	// SIGHUP: rebuild the pipeline and swap it in (picks up edited
	// pipeline specs and freshly imported tables with a cold cache).
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading pipeline")
			pipe, eng, err := buildPipeline(cfg)
			if err != nil {
				logger.Error("reload failed", "error", err)
				continue
			}
			svc.Swap(pipe, eng)
			logger.Info("pipeline reloaded", "stages", pipe.Stages())
		}
	}()

	go func() {
		logger.Info("lexnorm listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := loadConfig(*cfgPath, logger)
	pipe, eng, err := buildPipeline(cfg)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}
	svc := api.NewService(pipe, eng, cfg.Workers)

	srv := server.NewMCPServer("lexnorm", version)
	api.RegisterMCPTools(srv, svc)

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

func cmdNormalize(args []string) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := loadConfig(*cfgPath, logger)
	pipe, _, err := buildPipeline(cfg)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 1<<20), 1<<20)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for in.Scan() {
		fmt.Fprintln(out, pipe.Normalize(in.Text()))
	}
	if err := in.Err(); err != nil {
		logger.Error("read stdin", "error", err)
		os.Exit(1)
	}
}

// buildPipeline constructs the engine and pipeline from config: an
// explicit spec file wins, otherwise the default chain.
func buildPipeline(cfg config) (*pipeline.Pipeline, *translit.Engine, error) {
	var eng *translit.Engine
	if cfg.TablesDir != "" {
		eng = translit.NewEngine(translit.NewDirSource(cfg.TablesDir))
	} else {
		eng = translit.Default()
	}

	if cfg.Pipeline != "" {
		pipe, err := pipeline.Load(cfg.Pipeline, eng)
		if err != nil {
			return nil, nil, err
		}
		return pipe, eng, nil
	}

	mode := rules.SpaceAll
	if cfg.EdgeSpacer {
		mode = rules.SpaceEdges
	}
	pipe, err := pipeline.Default(pipeline.Options{
		SpacerMode:       mode,
		UnderscoreDigits: cfg.Underscore,
		Engine:           eng,
	})
	if err != nil {
		return nil, nil, err
	}
	return pipe, eng, nil
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr: ":8690",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
