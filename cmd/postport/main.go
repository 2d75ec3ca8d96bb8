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

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postport"
	"github.com/fwojciec/postport/fs"
	"github.com/fwojciec/postport/goquery"
	"github.com/fwojciec/postport/htmltomarkdown"
	pphttp "github.com/fwojciec/postport/http"
	"github.com/fwojciec/postport/ingest"
	ppslog "github.com/fwojciec/postport/slog"
	"github.com/fwojciec/postport/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ContentService postport.ContentService
	AssetService   postport.AssetService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("postport"),
		kong.Description("Import HTML export files into content records with local media assets."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Configuration(YAMLConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'postport --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POSTPORT_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ContentService = sqlite.NewContentService(m.DB)
	m.AssetService = sqlite.NewAssetService(m.DB)
	deps.DB = m.DB
	deps.Contents = m.ContentService
	deps.Assets = m.AssetService

	if strings.HasPrefix(kongCtx.Command(), "import") {
		deps.Importer = m.newImporter(&cli.Import, stderr)
		defer deps.Importer.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// newImporter wires the import pipeline collaborators for c.
func (m *Main) newImporter(c *ImportCmd, stderr io.Writer) *ingest.Importer {
	opts := []pphttp.Option{pphttp.WithTimeout(c.FetchTimeout)}
	if c.Rate > 0 {
		opts = append(opts, pphttp.WithRateLimiter(pphttp.NewDomainLimiter(c.Rate)))
	}

	mediaDir := c.MediaDir
	if mediaDir == "" {
		mediaDir = filepath.Join(filepath.Dir(m.DBPath), "media")
	}

	var (
		sources postport.SourceReader = fs.NewSourceDir()
		fetcher postport.Fetcher      = pphttp.NewFetcher(opts...)
		store   postport.AssetStore   = fs.NewAssetStore(mediaDir)
		records postport.ContentStore = m.ContentService
	)

	if c.Out != "" {
		var conv postport.Converter
		if c.Markdown {
			conv = htmltomarkdown.NewConverter()
		}
		records = fs.NewRecordWriter(c.Out, conv)
	}

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		sources = ppslog.NewLoggingSourceReader(sources, logger)
		fetcher = ppslog.NewLoggingFetcher(fetcher, logger)
		store = ppslog.NewLoggingAssetStore(store, logger)
		records = ppslog.NewLoggingContentStore(records, logger)
	}

	return &ingest.Importer{
		Sources: sources,
		Parser:  goquery.NewParser(),
		Fetcher: fetcher,
		Store:   store,
		Assets:  m.AssetService,
		Records: records,
	}
}

func defaultDBPath() string {
	if path := os.Getenv("POSTPORT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "postport.db"
	}
	dir := filepath.Join(home, ".postport")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "postport.db")
}
