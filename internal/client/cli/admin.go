package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Admin commands require a session with ROLE_ADMIN; the server enforces
// that, the client just relays the 403.
func (c *Cli) runAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: echoed admin <users|ban|unban> ...")
	}

	switch args[0] {
	case "users":
		return c.runAdminUsers(ctx, args[1:])
	case "ban":
		return c.runAdminSetActive(ctx, args[1:], false)
	case "unban":
		return c.runAdminSetActive(ctx, args[1:], true)
	default:
		return fmt.Errorf("unknown admin subcommand: %s", args[0])
	}
}

func (c *Cli) runAdminUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin users", flag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page")
	size := fs.Int("size", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	users, err := c.apiClient.ListUsers(ctx, *page, *size)
	if err != nil {
		return err
	}

	c.io.Printf("Users (%d total, page %d/%d):\n", users.TotalElements, users.Number+1, users.TotalPages)
	for _, user := range users.Content {
		state := "active"
		if !user.Active {
			state = "banned"
		}
		c.io.Printf("  #%d  %s <%s>  [%s]  %s\n",
			user.UserID, user.Username, user.Email, strings.Join(user.Roles, ", "), state)
	}
	return nil
}

func (c *Cli) runAdminSetActive(ctx context.Context, args []string, active bool) error {
	verb := "ban"
	if active {
		verb = "unban"
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: echoed admin %s <user-id>", verb)
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("user id must be a number: %w", err)
	}

	if err := c.apiClient.SetUserActive(ctx, userID, active); err != nil {
		return err
	}

	if active {
		c.io.Printf("✓ User #%d reactivated.\n", userID)
	} else {
		c.io.Printf("✓ User #%d banned.\n", userID)
	}
	return nil
}
