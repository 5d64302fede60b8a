package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/ucenter/pkg/api"
)

func (c *Cli) runAccountLogin(ctx context.Context, args []string) error {
	var flags appFlags
	fs := c.newFlagSet("account-login")
	flags.register(fs)
	accountID := fs.String("account-id", "", "Account ID")
	token := fs.String("token", "", "Account token (prompted if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	appID, secret, err := c.resolveApp(ctx, flags.appID, flags.secret)
	if err != nil {
		return err
	}

	account, err := c.readAccountID(*accountID)
	if err != nil {
		return err
	}

	accountToken := *token
	if accountToken == "" {
		accountToken, err = c.io.ReadPassword("Account token: ")
		if err != nil {
			return fmt.Errorf("failed to read account token: %w", err)
		}
	}

	resp, err := c.client.AccountLogin(ctx, api.AccountLoginAppInfo{
		AppID:        appID,
		AppSecret:    secret,
		AccountID:    account,
		AccountToken: accountToken,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Account verified!")
	c.io.Printf("Account ID:   %s\n", resp.AccountID)
	c.io.Printf("Name:         %s\n", resp.AccountName)
	c.io.Printf("Last login:   %s\n", formatTime(resp.LastLoginDateTime))
	c.io.Printf("Verified at:  %s\n", formatTime(resp.LastVerifyDateTime))

	return nil
}

// readAccountID запрашивает id аккаунта, если он не передан флагом
func (c *Cli) readAccountID(accountID string) (string, error) {
	if accountID != "" {
		return accountID, nil
	}
	accountID, err := c.io.ReadInput("Account ID: ")
	if err != nil {
		return "", fmt.Errorf("failed to read account id: %w", err)
	}
	return accountID, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.RFC3339)
}
