package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/echoed/echoed-cli/internal/client/cache"
	"github.com/echoed/echoed-cli/internal/validation"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

func (c *Cli) runReview(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: echoed review <add|list|delete> ...")
	}

	switch args[0] {
	case "add":
		return c.runReviewAdd(ctx, args[1:])
	case "list":
		return c.runReviewList(ctx, args[1:])
	case "delete":
		return c.runReviewDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown review subcommand: %s", args[0])
	}
}

func (c *Cli) runReviewAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review add", flag.ContinueOnError)
	rating := fs.Int("rating", 0, "rating 1-5")
	description := fs.String("text", "", "review text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: echoed review add <song|album> <spotify-id> --rating N [--text ...]")
	}
	kind, spotifyID := fs.Arg(0), fs.Arg(1)

	if err := validation.ValidateRating(*rating); err != nil {
		return err
	}

	req := pkgapi.CreateReviewRequest{Rating: *rating, Description: *description}

	var review *pkgapi.Review
	var err error
	switch kind {
	case "song":
		review, err = c.apiClient.CreateSongReview(ctx, spotifyID, req)
	case "album":
		review, err = c.apiClient.CreateAlbumReview(ctx, spotifyID, req)
	default:
		return fmt.Errorf("review target must be 'song' or 'album', got %q", kind)
	}
	if err != nil {
		return err
	}

	c.io.Printf("✓ Review #%d created (%d/5).\n", review.ReviewID, review.Rating)
	return nil
}

func (c *Cli) runReviewList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review list", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: echoed review list <song|album> <spotify-id>")
	}
	kind, spotifyID := fs.Arg(0), fs.Arg(1)

	var reviews *pkgapi.PagedResponse[pkgapi.Review]
	var err error
	var viewKind cache.ViewKind
	switch kind {
	case "song":
		reviews, err = c.apiClient.SongReviews(ctx, spotifyID, *page, *size)
		viewKind = cache.ViewSong
	case "album":
		reviews, err = c.apiClient.AlbumReviews(ctx, spotifyID, *page, *size)
		viewKind = cache.ViewAlbum
	default:
		return fmt.Errorf("review target must be 'song' or 'album', got %q", kind)
	}
	if err != nil {
		return err
	}

	if err := c.history.RecordView(ctx, viewKind, spotifyID, spotifyID); err != nil {
		c.logger.Warn("failed to record view in history", "error", err)
	}

	c.io.Printf("Reviews (%d total, page %d/%d):\n", reviews.TotalElements, reviews.Number+1, reviews.TotalPages)
	for _, review := range reviews.Content {
		c.io.Printf("  #%d  %d/5 by %s on %s\n", review.ReviewID, review.Rating, review.Username, review.Date)
		if review.Description != "" {
			c.io.Printf("      %s\n", review.Description)
		}
	}
	return nil
}

func (c *Cli) runReviewDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review delete", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: echoed review delete <review-id>")
	}

	var reviewID int64
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &reviewID); err != nil {
		return fmt.Errorf("review id must be a number: %w", err)
	}

	if err := c.apiClient.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	c.io.Printf("✓ Review #%d deleted.\n", reviewID)
	return nil
}
