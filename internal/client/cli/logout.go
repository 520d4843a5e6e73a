package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if c.store.Current() == nil && c.store.GetToken(ctx) == "" {
		c.io.Println("Not logged in.")
		return nil
	}

	if err := c.gateway.Logout(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	c.io.Println("✓ Logged out.")
	return nil
}
