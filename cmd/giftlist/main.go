package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/giftlist"
	"github.com/fwojciec/giftlist/fs"
	"github.com/fwojciec/giftlist/goquery"
	"github.com/fwojciec/giftlist/lookup"
	"github.com/fwojciec/giftlist/rod"
	glslog "github.com/fwojciec/giftlist/slog"
	"github.com/fwojciec/giftlist/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Gifts replaces the SQLite gift service when set.
	Gifts giftlist.GiftService

	// Fetcher replaces the Chrome fetcher when set. Used for end-to-end tests.
	Fetcher giftlist.Fetcher

	// PageInterval is the minimum time between page loads. Zero disables pacing.
	PageInterval time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		PageInterval: lookup.DefaultPageInterval,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Commands that load marketplace pages.
var browserCommands = map[string]bool{
	"add":          true,
	"alternatives": true,
	"replace":      true,
	"price":        true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("giftlist"),
		kong.Description("Build a gift list from marketplace searches."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'giftlist --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var extractor giftlist.ProductExtractor = goquery.NewExtractor(goquery.WithLogger(logger))
	if cli.Verbose {
		extractor = glslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	// Inspect works on local files only.
	if cmd == "inspect" {
		return kongCtx.Run(deps)
	}

	gifts := m.Gifts
	if gifts == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set GIFTLIST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		gifts = sqlite.NewGiftService(m.DB)
	}
	deps.DB = m.DB
	deps.Gifts = gifts

	if browserCommands[cmd] {
		fetcher := m.Fetcher
		if fetcher == nil {
			opts := []rod.Option{rod.WithSettleDelay(cli.Settle), rod.WithFetchTimeout(cli.Timeout)}
			if cli.ShowBrowser {
				opts = append(opts, rod.WithShowBrowser())
			}
			f, err := rod.NewFetcher(opts...)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer f.Close()
			fetcher = f
		}

		svc := &lookup.Service{
			Fetcher:   rod.NewLoggingFetcher(fetcher, logger),
			Extractor: extractor,
			Limiter:   lookup.NewDomainLimiter(m.PageInterval),
			Logger:    logger,
		}
		if cli.Snapshots != "" {
			svc.Snapshots = fs.NewSnapshotStore(cli.Snapshots)
		}
		deps.Lookup = svc
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GIFTLIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "giftlist.db"
	}
	dir := filepath.Join(home, ".giftlist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "giftlist.db")
}
