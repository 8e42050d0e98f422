package config

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/urfave/cli/v3"
)

// ValidateCommand validates a configuration file
var ValidateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Validate configuration file syntax and structure",
	ArgsUsage: "[config-file]",
	Action:    runValidate,
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if cmd.Args().Len() > 0 {
		configPath = cmd.Args().First()
	}

	if configPath == "" {
		path, err := config.FindConfig("")
		if err != nil {
			return fmt.Errorf("no config file specified and no default found: %w", err)
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Configuration is valid: %s\n", configPath)
	fmt.Printf("  Hosts: %d\n", len(cfg.Hosts))
	if cfg.Server.Family != "" {
		fmt.Printf("  Server family: %s\n", cfg.Server.Family)
	}

	return nil
}
