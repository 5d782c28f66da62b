package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/giftlist"
	"github.com/fwojciec/giftlist/lookup"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	queries, err := c.queries()
	if err != nil {
		return fail(deps, err)
	}
	if len(queries) == 0 {
		return fail(deps, giftlist.Errorf(giftlist.EINVALID, "no gift ideas given; pass them as arguments or with --file"))
	}

	progress := func(event lookup.ProgressEvent) {
		prefix := fmt.Sprintf("[%d/%d]", event.Index+1, event.Total)
		switch event.Type {
		case lookup.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "%s Searching %q\n", prefix, event.Query)
		case lookup.ProgressNotFound:
			fmt.Fprintf(deps.Stderr, "%s Nothing found for %q\n", prefix, event.Query)
		case lookup.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "%s Failed %q: %v\n", prefix, event.Query, event.Error)
		}
	}

	products, lookupErr := deps.Lookup.LookupAll(deps.Ctx, queries, progress)

	// Products found before a cancellation are still saved.
	added := 0
	for _, p := range products {
		gift := &giftlist.Gift{Product: *p}
		if err := deps.Gifts.CreateGift(deps.Ctx, gift); err != nil {
			return fail(deps, err)
		}
		added++
		printGift(deps.Stdout, gift)
	}

	if lookupErr != nil {
		fmt.Fprintf(deps.Stderr, "error: stopped after %d of %d: %v\n", added, len(queries), lookupErr)
		return lookupErr
	}

	fmt.Fprintf(deps.Stdout, "Added %d of %d gift ideas\n", added, len(queries))
	return nil
}

// queries merges positional queries and the lines of the query file,
// dropping blanks and duplicates.
func (c *AddCmd) queries() ([]string, error) {
	text := strings.Join(c.Queries, "\n")
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return nil, err
		}
		text += "\n" + string(data)
	}
	return giftlist.ParseQueries(strings.NewReader(text))
}
