package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ucenter/internal/client/iocli"
	"github.com/iudanet/ucenter/internal/client/storage"
	"github.com/iudanet/ucenter/pkg/api"
)

//go:generate moq -out broker_mock_test.go . BrokerClient

// BrokerClient операции сервера, которые использует CLI
type BrokerClient interface {
	CreateApp(ctx context.Context, req api.AppInfo) (*api.AppResponse, error)
	LoginApp(ctx context.Context, req api.AppLoginInfo) (*api.AppLoginResponse, error)
	AccountLogin(ctx context.Context, req api.AccountLoginAppInfo) (*api.AccountLoginAppResponse, error)
	ReadData(ctx context.Context, req api.AppAccountDataInfo) (*api.AppAccountDataResponse, error)
	WriteData(ctx context.Context, req api.AppAccountDataInfo) (*api.AppAccountDataResponse, error)
}

var (
	// ErrUnknownCommand команда не распознана
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNoProfile нет ни флагов приложения, ни сохраненного профиля
	ErrNoProfile = errors.New("no app profile saved. Run 'ucenter-client create-app' or 'ucenter-client login -app-id ID' first")
)

type Cli struct {
	io        iocli.IO
	client    BrokerClient
	profiles  storage.ProfileStorage
	now       func() time.Time
	serverURL string
}

func New(io iocli.IO, client BrokerClient, profiles storage.ProfileStorage, serverURL string) *Cli {
	return &Cli{
		io:        io,
		client:    client,
		profiles:  profiles,
		serverURL: serverURL,
		now:       time.Now,
	}
}

// Run выполняет команду args[0] с аргументами args[1:]
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return ErrUnknownCommand
	}

	command, rest := args[0], args[1:]

	switch command {
	case "create-app":
		return c.runCreateApp(ctx, rest)
	case "login":
		return c.runLogin(ctx, rest)
	case "account-login":
		return c.runAccountLogin(ctx, rest)
	case "read":
		return c.runRead(ctx, rest)
	case "write":
		return c.runWrite(ctx, rest)
	case "profile":
		return c.runProfile(ctx)
	case "forget":
		return c.runForget(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// resolveApp дополняет незаданные app id и секрет из сохраненного профиля.
// Если профиль относится к другому приложению, секрет запрашивается.
func (c *Cli) resolveApp(ctx context.Context, appID, secret string) (string, string, error) {
	if appID != "" && secret != "" {
		return appID, secret, nil
	}

	profile, err := c.profiles.GetProfile(ctx)
	if err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
		return "", "", fmt.Errorf("failed to load profile: %w", err)
	}

	if appID == "" {
		if profile == nil {
			return "", "", ErrNoProfile
		}
		appID = profile.AppID
	}

	if secret == "" && profile != nil && profile.AppID == appID {
		secret = profile.AppSecret
	}

	if secret == "" {
		secret, err = c.io.ReadPassword("App secret: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read app secret: %w", err)
		}
	}

	return appID, secret, nil
}

// saveProfile запоминает приложение для следующих команд
func (c *Cli) saveProfile(ctx context.Context, appID, secret string) error {
	profile := &storage.Profile{
		ServerURL: c.serverURL,
		AppID:     appID,
		AppSecret: secret,
		SavedAt:   c.now().Unix(),
	}
	if err := c.profiles.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("UCenter Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  ucenter-client [OPTIONS] COMMAND [FLAGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -version                 Show version information")
	c.io.Println("  -server URL              Server URL (default: saved profile, then http://localhost:8080)")
	c.io.Println("  -db PATH                 Path to local profile database (default: ucenter-client.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  create-app               Register an app (-app-id, -secret, -generate)")
	c.io.Println("  login                    Get an app session token (-app-id, -secret)")
	c.io.Println("  account-login            Verify an account token (-account-id, -token)")
	c.io.Println("  read                     Read account data for the app (-account-id)")
	c.io.Println("  write                    Replace account data for the app (-account-id, -data | -file)")
	c.io.Println("  profile                  Show saved app profile")
	c.io.Println("  forget                   Remove saved app profile")
	c.io.Println()
	c.io.Println("App flags (-app-id, -secret) default to the saved profile.")
	c.io.Println("A missing secret or account token is prompted without echo.")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  ucenter-client create-app -app-id notes -generate")
	c.io.Println("  ucenter-client account-login -account-id alice")
	c.io.Println("  ucenter-client write -account-id alice -data '{\"theme\":\"dark\"}'")
	c.io.Println("  ucenter-client read -account-id alice")
	c.io.Println("  ucenter-client -server https://ucenter.example.com login -app-id notes")
}
