package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/echoed/echoed-cli/internal/validation"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	username := fs.String("username", "", "new username")
	bio := fs.String("bio", "", "new biography")
	avatar := fs.String("avatar", "", "new profile picture URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := pkgapi.UpdateProfileRequest{}
	if *username != "" {
		if err := validation.ValidateUsername(*username); err != nil {
			return fmt.Errorf("invalid username: %w", err)
		}
		req.Username = username
	}
	if *bio != "" {
		req.Biography = bio
	}
	if *avatar != "" {
		req.ProfilePictureURL = avatar
	}
	if req.Username == nil && req.Biography == nil && req.ProfilePictureURL == nil {
		return fmt.Errorf("nothing to update; pass --username, --bio or --avatar")
	}

	identity, err := c.gateway.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	if identity == nil {
		return fmt.Errorf("not logged in")
	}

	c.io.Println("✓ Profile updated.")
	c.io.Printf("Username: %s\n", identity.Username)
	if identity.Biography != "" {
		c.io.Printf("Biography: %s\n", identity.Biography)
	}
	return nil
}

func (c *Cli) runChangePassword(ctx context.Context) error {
	c.io.Println("=== Change Password ===")
	c.io.Println()

	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	next, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(next); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}

	err = c.gateway.ChangePassword(ctx, pkgapi.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Password changed.")
	return nil
}
