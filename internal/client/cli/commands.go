package cli

import (
	"context"
	"fmt"
	"os"
)

// Run dispatches a command. Commands print their own output; errors are
// reported on stderr with a non-zero exit.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "whoami":
		err = c.runWhoami(ctx)
	case "profile":
		err = c.runProfile(ctx, args)
	case "change-password":
		err = c.runChangePassword(ctx)
	case "search":
		err = c.runSearch(ctx, args)
	case "review":
		err = c.runReview(ctx, args)
	case "comment":
		err = c.runComment(ctx, args)
	case "react":
		err = c.runReact(ctx, args)
	case "history":
		err = c.runHistory(ctx, args)
	case "admin":
		err = c.runAdmin(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	// A terminal refresh failure during any command surfaces one notice.
	c.reportExpired()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
