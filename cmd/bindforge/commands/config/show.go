package config

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ShowCommand prints the effective configuration
var ShowCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show the effective configuration",
	ArgsUsage: "[config-file]",
	Action:    runShow,
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if cmd.Args().Len() > 0 {
		configPath = cmd.Args().First()
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Print(string(out))
	return nil
}
