package cli

import (
	"flag"
	"strings"
)

// maskSecret скрывает секрет, оставляя последние 4 символа
func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", 8) // Полностью маскируем короткие секреты
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}

// newFlagSet создает набор флагов команды, справка пишется в IO
func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	return fs
}

// appFlags общие флаги приложения
type appFlags struct {
	appID  string
	secret string
}

func (f *appFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.appID, "app-id", "", "App ID (default: saved profile)")
	fs.StringVar(&f.secret, "secret", "", "App secret (default: saved profile or prompt)")
}
