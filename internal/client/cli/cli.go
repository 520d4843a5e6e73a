// Package cli implements the echoed command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/echoed/echoed-cli/internal/client/api"
	"github.com/echoed/echoed-cli/internal/client/auth"
	"github.com/echoed/echoed-cli/internal/client/cache"
	"github.com/echoed/echoed-cli/internal/client/expiry"
	"github.com/echoed/echoed-cli/internal/client/iocli"
	"github.com/echoed/echoed-cli/internal/client/session"
)

// Cli holds the wired services the commands operate on
type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	gateway   *auth.Gateway
	store     *session.Store
	notifier  *expiry.Notifier
	history   *cache.Cache
	logger    *slog.Logger
}

// New creates the CLI over fully wired services
func New(io iocli.IO, apiClient *api.Client, gateway *auth.Gateway, store *session.Store, notifier *expiry.Notifier, history *cache.Cache, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:        io,
		apiClient: apiClient,
		gateway:   gateway,
		store:     store,
		notifier:  notifier,
		history:   history,
		logger:    logger,
	}
}

// PrintUsage prints the command overview
func PrintUsage() {
	fmt.Println("Echoed - music review platform client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  echoed [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register             Create an account and log in")
	fmt.Println("  login                Log in with email/username and password")
	fmt.Println("  logout               Log out and clear the local session")
	fmt.Println("  status               Show the current session")
	fmt.Println("  whoami               Show the profile of the logged-in user")
	fmt.Println("  profile              Update profile fields")
	fmt.Println("  change-password      Change the account password")
	fmt.Println("  search <query>       Search songs, artists and albums")
	fmt.Println("  review               Create or list reviews")
	fmt.Println("  comment              Comment on a review or list comments")
	fmt.Println("  react                React to a review or comment")
	fmt.Println("  history              Show recent searches and views")
	fmt.Println("  admin                List, ban or reactivate users (admins)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  echoed login")
	fmt.Println("  echoed search \"in rainbows\"")
	fmt.Println("  echoed review add song 6dGnYIeXmHdcikdzNNDMm2 --rating 5")
	fmt.Println("  echoed --server https://api.echoed.app/api/v1 whoami")
}

// readYesNo reads a y/n answer, defaulting to no
func (c *Cli) readYesNo(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// reportExpired tells the user the session ended and acknowledges the
// notifier so the next invocation starts clean.
func (c *Cli) reportExpired() {
	if c.notifier.Signaled() {
		c.io.Println()
		c.io.Println("Your session has expired. Please log in again with 'echoed login'.")
		c.notifier.Acknowledge()
	}
}
