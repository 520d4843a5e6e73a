package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 5, "results per category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return fmt.Errorf("usage: echoed search <query>")
	}

	resp, err := c.apiClient.UnifiedSearch(ctx, query, *page, *size)
	if err != nil {
		return err
	}

	if err := c.history.RecordSearch(ctx, query); err != nil {
		c.logger.Warn("failed to record search in history", "error", err)
	}

	c.io.Printf("Results for %q:\n", resp.Query)

	c.io.Println()
	c.io.Printf("Songs (%d total):\n", resp.Songs.TotalElements)
	for _, song := range resp.Songs.Content {
		c.io.Printf("  %s - %s  [%s]\n", strings.Join(song.Artists, ", "), song.Name, song.SpotifyID)
	}

	c.io.Println()
	c.io.Printf("Albums (%d total):\n", resp.Albums.TotalElements)
	for _, album := range resp.Albums.Content {
		c.io.Printf("  %s - %s  [%s]\n", strings.Join(album.Artists, ", "), album.Name, album.SpotifyID)
	}

	c.io.Println()
	c.io.Printf("Artists (%d total):\n", resp.Artists.TotalElements)
	for _, artist := range resp.Artists.Content {
		c.io.Printf("  %s  [%s]\n", artist.Name, artist.SpotifyID)
	}
	return nil
}
