package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	if c.store.Current() == nil {
		return fmt.Errorf("not logged in")
	}

	profile, err := c.apiClient.Me(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("%s <%s>\n", profile.Username, profile.Email)
	c.io.Printf("Provider: %s\n", profile.Provider)
	c.io.Printf("Roles: %s\n", strings.Join(profile.Roles, ", "))
	if profile.Biography != "" {
		c.io.Printf("Biography: %s\n", profile.Biography)
	}

	stats, err := c.apiClient.UserStats(ctx, profile.Username)
	if err != nil {
		// the profile is the point; stats are best effort
		return nil
	}
	c.io.Printf("Reviews: %d (avg rating %.1f), comments: %d, reactions: %d\n",
		stats.TotalReviews, stats.AverageRating, stats.TotalComments, stats.TotalReactions)
	return nil
}
