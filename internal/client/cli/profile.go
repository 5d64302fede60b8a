package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ucenter/internal/client/storage"
)

func (c *Cli) runProfile(ctx context.Context) error {
	profile, err := c.profiles.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			c.io.Println("No saved profile")
			return nil
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	c.io.Println("=== App Profile ===")
	c.io.Printf("Server:     %s\n", profile.ServerURL)
	c.io.Printf("App ID:     %s\n", profile.AppID)
	c.io.Printf("App secret: %s\n", maskSecret(profile.AppSecret))
	if profile.SavedAt > 0 {
		c.io.Printf("Saved at:   %s\n", time.Unix(profile.SavedAt, 0).Format(time.RFC3339))
	}

	return nil
}

func (c *Cli) runForget(ctx context.Context) error {
	if err := c.profiles.DeleteProfile(ctx); err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			c.io.Println("No saved profile")
			return nil
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	c.io.Println("✓ Profile removed")
	return nil
}
