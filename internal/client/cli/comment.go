package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/echoed/echoed-cli/internal/validation"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

func (c *Cli) runComment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: echoed comment <add|list|delete> ...")
	}

	switch args[0] {
	case "add":
		return c.runCommentAdd(ctx, args[1:])
	case "list":
		return c.runCommentList(ctx, args[1:])
	case "delete":
		return c.runCommentDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown comment subcommand: %s", args[0])
	}
}

func (c *Cli) runCommentAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: echoed comment add <review-id> <text>")
	}

	reviewID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("review id must be a number: %w", err)
	}

	text := strings.Join(args[1:], " ")
	if err := validation.ValidateComment(text); err != nil {
		return err
	}

	comment, err := c.apiClient.CreateComment(ctx, reviewID, pkgapi.CommentRequest{Text: text})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Comment #%d added to review #%d.\n", comment.CommentID, comment.ReviewID)
	return nil
}

func (c *Cli) runCommentList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("comment list", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: echoed comment list <review-id>")
	}

	reviewID, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("review id must be a number: %w", err)
	}

	comments, err := c.apiClient.ReviewComments(ctx, reviewID, *page, *size)
	if err != nil {
		return err
	}

	c.io.Printf("Comments (%d total):\n", comments.TotalElements)
	for _, comment := range comments.Content {
		c.io.Printf("  #%d  %s: %s\n", comment.CommentID, comment.Username, comment.Text)
	}
	return nil
}

func (c *Cli) runCommentDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: echoed comment delete <comment-id>")
	}

	commentID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("comment id must be a number: %w", err)
	}

	if err := c.apiClient.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	c.io.Printf("✓ Comment #%d deleted.\n", commentID)
	return nil
}
