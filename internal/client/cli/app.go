package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/ucenter/internal/crypto"
	"github.com/iudanet/ucenter/internal/validation"
	"github.com/iudanet/ucenter/pkg/api"
)

func (c *Cli) runCreateApp(ctx context.Context, args []string) error {
	var flags appFlags
	fs := c.newFlagSet("create-app")
	flags.register(fs)
	generate := fs.Bool("generate", false, "Generate a random app secret")
	if err := fs.Parse(args); err != nil {
		return err
	}

	appID := flags.appID
	if appID == "" {
		var err error
		appID, err = c.io.ReadInput("App ID: ")
		if err != nil {
			return fmt.Errorf("failed to read app id: %w", err)
		}
	}

	secret := flags.secret
	switch {
	case secret != "":
	case *generate:
		var err error
		secret, err = crypto.GenerateToken()
		if err != nil {
			return err
		}
	default:
		var err error
		secret, err = c.io.ReadPassword("App secret: ")
		if err != nil {
			return fmt.Errorf("failed to read app secret: %w", err)
		}
	}

	if err := errors.Join(
		validation.ValidateID("appId", appID),
		validation.ValidateCredential("appSecret", secret),
	); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	resp, err := c.client.CreateApp(ctx, api.AppInfo{AppID: appID, AppSecret: secret})
	if err != nil {
		return err
	}

	// Сервер возвращает ранее сохраненный секрет, профиль должен хранить именно его
	if err := c.saveProfile(ctx, resp.AppID, resp.AppSecret); err != nil {
		return err
	}

	c.io.Println("✓ App registered!")
	c.io.Printf("App ID: %s\n", resp.AppID)
	if resp.AppSecret != secret {
		c.io.Println("Note: the app already existed, its stored secret was kept.")
	} else if *generate {
		c.io.Printf("App secret: %s\n", resp.AppSecret)
	}
	c.io.Println("The app profile has been saved.")

	return nil
}

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	var flags appFlags
	fs := c.newFlagSet("login")
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	appID, secret, err := c.resolveApp(ctx, flags.appID, flags.secret)
	if err != nil {
		return err
	}

	resp, err := c.client.LoginApp(ctx, api.AppLoginInfo{AppID: appID, AppSecret: secret})
	if err != nil {
		return err
	}

	// Явно заданное приложение запоминается после успешного входа
	if flags.appID != "" || flags.secret != "" {
		if err := c.saveProfile(ctx, appID, secret); err != nil {
			return err
		}
	}

	c.io.Println("✓ App login successful!")
	c.io.Printf("App ID: %s\n", resp.AppID)
	c.io.Printf("App token: %s\n", resp.AppToken)
	c.io.Printf("Token expires in: %d seconds\n", resp.ExpiresIn)

	return nil
}
