package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iudanet/ucenter/internal/validation"
	"github.com/iudanet/ucenter/pkg/api"
)

func (c *Cli) runRead(ctx context.Context, args []string) error {
	var flags appFlags
	fs := c.newFlagSet("read")
	flags.register(fs)
	accountID := fs.String("account-id", "", "Account ID")
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

	resp, err := c.client.ReadData(ctx, api.AppAccountDataInfo{
		AppID:     appID,
		AppSecret: secret,
		AccountID: account,
	})
	if err != nil {
		return err
	}

	// Отсутствие данных и пустая строка различаются
	if resp.Data == nil {
		c.io.Printf("No data stored for account %s in app %s\n", resp.AccountID, resp.AppID)
		return nil
	}

	c.io.Println(*resp.Data)
	return nil
}

func (c *Cli) runWrite(ctx context.Context, args []string) error {
	var flags appFlags
	fs := c.newFlagSet("write")
	flags.register(fs)
	accountID := fs.String("account-id", "", "Account ID")
	dataFlag := fs.String("data", "", "Data to store")
	dataFile := fs.String("file", "", "Read data to store from file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dataSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "data" {
			dataSet = true
		}
	})

	if dataSet && *dataFile != "" {
		return fmt.Errorf("use either -data or -file, not both")
	}

	appID, secret, err := c.resolveApp(ctx, flags.appID, flags.secret)
	if err != nil {
		return err
	}

	account, err := c.readAccountID(*accountID)
	if err != nil {
		return err
	}

	data := *dataFlag
	switch {
	case dataSet:
	case *dataFile != "":
		content, err := os.ReadFile(*dataFile)
		if err != nil {
			return fmt.Errorf("failed to read data file: %w", err)
		}
		data = string(content)
	default:
		data, err = c.io.ReadInput("Data: ")
		if err != nil {
			return fmt.Errorf("failed to read data: %w", err)
		}
	}

	if err := validation.ValidateData(data); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	resp, err := c.client.WriteData(ctx, api.AppAccountDataInfo{
		AppID:     appID,
		AppSecret: secret,
		AccountID: account,
		Data:      data,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Data saved for account %s in app %s (%d bytes)\n", resp.AccountID, resp.AppID, len(data))
	return nil
}
