package cli

import (
	"context"
	"strings"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	identity := c.store.Current()
	if identity == nil {
		c.io.Println("Status: Not logged in")
		c.io.Println()
		c.io.Println("Run 'echoed login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("User: %s <%s>\n", identity.Username, identity.Email)
	c.io.Printf("Provider: %s\n", identity.Provider)
	c.io.Printf("Roles: %s\n", strings.Join(identity.Roles, ", "))
	if c.store.GetToken(ctx) == "" {
		c.io.Println()
		c.io.Println("Warning: no access token stored; requests will go out unauthenticated.")
	}
	return nil
}
