package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/giftlist"
	"github.com/fwojciec/giftlist/lookup"
	"github.com/fwojciec/giftlist/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Gifts  giftlist.GiftService

	// Lookup is only set for commands that load marketplace pages.
	Lookup *lookup.Service

	// Extractor parses saved pages for the inspect command.
	Extractor giftlist.ProductExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Log page loads and extraction details to stderr"`
	ShowBrowser bool          `help:"Run Chrome with a visible window"`
	Snapshots   string        `type:"path" env:"GIFTLIST_SNAPSHOTS" help:"Save every fetched search page into this directory"`
	Settle      time.Duration `default:"2s" help:"Time to let a page finish rendering after load"`
	Timeout     time.Duration `default:"60s" help:"Upper bound for loading one page"`

	Add          AddCmd          `cmd:"" help:"Look up gift ideas on the marketplace and add them to the list"`
	List         ListCmd         `cmd:"" help:"Show the gift list"`
	Delete       DeleteCmd       `cmd:"" help:"Remove a gift from the list"`
	Comment      CommentCmd      `cmd:"" help:"Set or clear the comment of a gift"`
	Alternatives AlternativesCmd `cmd:"" help:"Show other products matching a gift's query"`
	Replace      ReplaceCmd      `cmd:"" help:"Replace a gift with one of its alternatives"`
	Price        PriceCmd        `cmd:"" help:"Look up the missing price of a gift"`
	Export       ExportCmd       `cmd:"" help:"Write the gift list to a JSON file"`
	Import       ImportCmd       `cmd:"" help:"Append gifts from a JSON file"`
	Inspect      InspectCmd      `cmd:"" help:"Run the extractor on a saved page"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Queries []string `arg:"" optional:"" help:"Gift ideas or marketplace URLs"`
	File    string   `short:"f" type:"path" help:"Read gift ideas from a file, one per line"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Position int  `arg:"" help:"Gift number as shown by list"`
	Force    bool `help:"Confirm deletion"`
}

// CommentCmd is the "comment" subcommand.
type CommentCmd struct {
	Position int    `arg:"" help:"Gift number as shown by list"`
	Text     string `arg:"" optional:"" help:"Comment text; omit to clear"`
}

// AlternativesCmd is the "alternatives" subcommand.
type AlternativesCmd struct {
	Position int `arg:"" help:"Gift number as shown by list"`
	Max      int `short:"m" default:"5" help:"Number of alternatives to show"`
}

// ReplaceCmd is the "replace" subcommand.
type ReplaceCmd struct {
	Position    int `arg:"" help:"Gift number as shown by list"`
	Alternative int `arg:"" help:"Alternative number as shown by alternatives"`
	Max         int `short:"m" default:"5" help:"Number of alternatives to choose from"`
}

// PriceCmd is the "price" subcommand.
type PriceCmd struct {
	Position int `arg:"" help:"Gift number as shown by list"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path string `arg:"" type:"path" help:"Output JSON file"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path    string `arg:"" type:"path" help:"JSON file written by export"`
	Replace bool   `help:"Delete the current list first"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File         string `arg:"" type:"existingfile" help:"Saved HTML page"`
	Query        string `short:"q" help:"Query the page was fetched for"`
	Alternatives int    `short:"a" help:"Extract this many alternatives instead of the primary product"`
	Product      bool   `short:"p" help:"Treat the file as a product page and extract its price"`
}
