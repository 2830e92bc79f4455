package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/waylonwalker/senzu/internal/api"
	"github.com/waylonwalker/senzu/internal/config"
	"github.com/waylonwalker/senzu/internal/db"
	"github.com/waylonwalker/senzu/internal/mcp"
	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/translate"
	"github.com/waylonwalker/senzu/internal/tui"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"list": true, "show": true, "transformations": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs an interactive surface.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → TUI or MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// buildCore wires the upstream client, translation chain, and navigation
// core from config. The returned close function releases the translation
// cache database.
func buildCore(baseDir string, cfg *config.Config) (*nav.Core, func(), error) {
	database, err := db.Init(baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}
	db.ConfigurePool(database, cfg)

	var translator translate.Translator
	if !cfg.DisableTranslation {
		backend := translate.NewGoogleTranslator(cfg.SourceLanguage, cfg.Language)
		translator = translate.NewCachingTranslator(backend, database, cfg.Language)
	}

	core := nav.New(api.NewClient(cfg), nav.Options{
		Translator: translator,
		Prefs: nav.Prefs{
			HoverPanel: cfg.HoverPanel,
			WideLayout: cfg.WideLayout,
		},
	})
	return core, func() { database.Close() }, nil
}

func main() {
	// Handle --help/--version before any setup (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}
	baseDir := filepath.Join(homeDir, ".senzu")

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tools in config: %v\n", unknown)
	}

	core, closeCore, err := buildCore(baseDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeCore()

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(core)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start a surface)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'senzu --help' for usage.\n")
		os.Exit(1)
	}

	// No args + interactive terminal → full-screen browser
	if isTerminal() {
		if err := tui.Run(core); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Piped stdin → MCP server
	if err := mcp.Run(core, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
