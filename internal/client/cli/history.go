package cli

import (
	"context"
	"flag"
	"time"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("n", 10, "entries to show per section")
	if err := fs.Parse(args); err != nil {
		return err
	}

	searches, err := c.history.RecentSearches(ctx, *limit)
	if err != nil {
		return err
	}
	views, err := c.history.RecentViews(ctx, *limit)
	if err != nil {
		return err
	}

	c.io.Println("Recent searches:")
	if len(searches) == 0 {
		c.io.Println("  (none)")
	}
	for _, entry := range searches {
		c.io.Printf("  %s  %s\n", entry.SearchedAt.Local().Format(time.DateTime), entry.Query)
	}

	c.io.Println()
	c.io.Println("Recently viewed:")
	if len(views) == 0 {
		c.io.Println("  (none)")
	}
	for _, entry := range views {
		c.io.Printf("  %s  %s %s\n", entry.ViewedAt.Local().Format(time.DateTime), entry.Kind, entry.SpotifyID)
	}
	return nil
}
