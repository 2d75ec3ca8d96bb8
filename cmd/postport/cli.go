package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postport"
	"github.com/fwojciec/postport/ingest"
	"github.com/fwojciec/postport/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Contents postport.ContentService
	Assets   postport.AssetService
	Importer *ingest.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"YAML file supplying flag values"`
	DB     string          `help:"Database path (default $POSTPORT_DB or ~/.postport/postport.db)"`

	Import ImportCmd `cmd:"" help:"Import every .html export file in a directory"`
	List   ListCmd   `cmd:"" help:"List imported records"`
	Show   ShowCmd   `cmd:"" help:"Show a record and its assets"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir          string        `arg:"" help:"Directory containing export files"`
	Owner        int           `default:"1" help:"Owner ID applied to records and assets"`
	MediaDir     string        `name:"media-dir" help:"Directory for downloaded images (default next to the database)"`
	Out          string        `help:"Write records as files into this directory instead of the database"`
	Markdown     bool          `help:"Render file bodies as Markdown (with --out)"`
	AltFallback  string        `name:"alt-fallback" enum:"space,title" default:"space" help:"Alt text for images without one (space|title)"`
	Align        string        `default:"center" help:"Placeholder alignment hint"`
	ViewMode     string        `name:"view-mode" default:"wide" help:"Placeholder view mode hint"`
	FetchTimeout time.Duration `name:"fetch-timeout" default:"30s" help:"Timeout for a single image download"`
	Rate         float64       `default:"0" help:"Maximum image requests per second per host (0 = unlimited)"`
	Verbose      bool          `short:"v" help:"Log storage and fetch operations to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Owner int `help:"Only list records of this owner (0 = all)"`
	Limit int `default:"50" help:"Maximum number of records"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Record ID"`
	Body bool   `help:"Print the record body"`
}
