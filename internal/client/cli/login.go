package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/echoed/echoed-cli/internal/client/api"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	emailOrUsername, err := c.io.ReadInput("Email or username: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	remember, err := c.readYesNo("Remember me? [y/N]: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	identity, err := c.gateway.Login(ctx, pkgapi.AuthRequest{
		EmailOrUsername: emailOrUsername,
		Password:        password,
	}, remember)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			return fmt.Errorf("invalid credentials")
		case errors.Is(err, api.ErrAccountLocked):
			return fmt.Errorf("this account is deactivated; contact support to reactivate it")
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s <%s>\n", identity.Username, identity.Email)
	if remember {
		c.io.Println("Your session has been saved.")
	} else {
		c.io.Println("Session is ephemeral and ends with this process.")
	}
	return nil
}
