// Package main is the erabu CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hoshii/erabu/internal/cli"
	"github.com/hoshii/erabu/internal/config"
	"github.com/hoshii/erabu/internal/models"
	"github.com/hoshii/erabu/internal/pipeline"
	"github.com/hoshii/erabu/internal/provider"
	"github.com/hoshii/erabu/internal/server"
	"github.com/hoshii/erabu/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/erabu/config.yaml"

// loadConfig loads config from path. When path is the default, a config.yaml
// in the current directory takes precedence (for development). Returns the
// config and the path that was actually loaded. A missing default file is
// not an error; built-in defaults are used.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "config":
		runConfig()
	case "version", "--version", "-v":
		fmt.Printf("erabu version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// buildEngine wires the provider chain and pipeline engine from config.
func buildEngine(store *config.Store, logger *zap.Logger) (*pipeline.Engine, error) {
	providers := &store.Current().Providers

	fallback, err := provider.NewFallback()
	if err != nil {
		return nil, fmt.Errorf("failed to build fallback corpus: %w", err)
	}

	router := provider.NewRouter(
		[]provider.Provider{provider.NewYelp(providers), provider.NewPlaces(providers)},
		[]provider.Provider{provider.NewCustomSearch(providers)},
		fallback,
		logger,
	)
	return pipeline.NewEngine(store, router, logger), nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (stage counts, provider fallbacks, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store := config.NewStore(cfg)
	engine, err := buildEngine(store, logger)
	if err != nil {
		logger.Fatal("Failed to initialize engine", zap.Error(err))
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if resolvedConfigPath != "" {
		go func() {
			if err := config.Watch(watchCtx, resolvedConfigPath, store, logger); err != nil {
				logger.Warn("config watcher stopped", zap.Error(err))
			}
		}()
	}

	srv := server.NewServer(engine, store, resolvedConfigPath, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	location := fs.String("location", "", "location hint for local business queries")
	count := fs.Int("count", 0, "maximum results (0 = configured default)")
	format := fs.String("format", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(os.Args[2:])

	queryText := buildSearchQuery(fs.Args())
	if queryText == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := config.NewStore(cfg)
	engine, err := buildEngine(store, logger)
	if err != nil {
		fmt.Printf("Failed to initialize engine: %v\n", err)
		os.Exit(1)
	}

	response, err := engine.Search(context.Background(), &models.Request{
		Query:    queryText,
		Location: *location,
		Count:    *count,
	})
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		os.Exit(1)
	}

	if err := cli.WriteResponse(os.Stdout, response, cli.ParseFormat(*format)); err != nil {
		fmt.Printf("Failed to write response: %v\n", err)
		os.Exit(1)
	}
}

func runConfig() {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if resolvedPath != "" {
		fmt.Printf("# %s\n", resolvedPath)
	} else {
		fmt.Println("# built-in defaults")
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Printf("Failed to encode config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// buildSearchQuery joins all positional args with spaces so multi-word
// queries work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: erabu search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  erabu search coffee shops in San Francisco
  erabu search --location "New York, NY" --count 5 best pizza
  erabu search React tutorial 2025
`)
}

func printUsage() {
	fmt.Println(`erabu - result-quality search pipeline

Usage:
  erabu server [--config path] [--debug]   start the HTTP API server
  erabu search [flags] <query>             run a one-shot search
  erabu config [--config path]             print the resolved configuration
  erabu version                            print version
  erabu help                               show this help`)
}
