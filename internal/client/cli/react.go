package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

var reactionTypes = map[string]pkgapi.ReactionType{
	"like":    pkgapi.ReactionLike,
	"love":    pkgapi.ReactionLove,
	"wow":     pkgapi.ReactionWow,
	"dislike": pkgapi.ReactionDislike,
}

func (c *Cli) runReact(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "delete" {
		return c.runReactDelete(ctx, args[1:])
	}
	if len(args) < 3 {
		return fmt.Errorf("usage: echoed react <like|love|wow|dislike> <review|comment> <id>")
	}

	reaction, ok := reactionTypes[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown reaction %q; use like, love, wow or dislike", args[0])
	}

	var target pkgapi.ReactedType
	switch args[1] {
	case "review":
		target = pkgapi.ReactedReview
	case "comment":
		target = pkgapi.ReactedComment
	default:
		return fmt.Errorf("reaction target must be 'review' or 'comment', got %q", args[1])
	}

	id, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a number: %w", err)
	}

	resp, err := c.apiClient.React(ctx, pkgapi.ReactionRequest{
		ReactionType: reaction,
		ReactedType:  target,
		ReactedID:    id,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Reacted %s to %s #%d.\n", resp.ReactionType, strings.ToLower(string(resp.ReactedType)), resp.ReactedID)
	return nil
}

func (c *Cli) runReactDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: echoed react delete <reaction-id>")
	}

	reactionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("reaction id must be a number: %w", err)
	}

	if err := c.apiClient.DeleteReaction(ctx, reactionID); err != nil {
		return err
	}
	c.io.Printf("✓ Reaction #%d removed.\n", reactionID)
	return nil
}
