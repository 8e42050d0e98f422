package zone

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/logging"
	"github.com/catalystcommunity/bindforge/internal/target"
	"github.com/urfave/cli/v3"
)

var removeCommand = &cli.Command{
	Name:      "remove",
	Usage:     "Remove a zone from a provisioned server",
	ArgsUsage: "<domain>",
	Description: `Remove a zone declaration and its zone file from the server.

WARNING: the zone file is deleted. This action cannot be undone.

Example:
  bindforge zone remove example.com --yes`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "configured remote host (default: local machine)",
		},
		&cli.BoolFlag{
			Name:  "yes",
			Usage: "Skip confirmation prompt",
		},
	},
	Action: runRemove,
}

func runRemove(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("domain is required")
	}
	domain := cmd.Args().Get(0)

	if !cmd.Bool("yes") {
		fmt.Printf("WARNING: This will remove zone %s and delete its zone file.\n", domain)
		fmt.Print("Are you sure? (yes/no): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "yes" {
			fmt.Println("Removal cancelled")
			return nil
		}
	}

	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.Setup(cfg.LogFile, cmd.Bool("verbose"))

	t, err := target.Resolve(cfg, cmd.String("host"))
	if err != nil {
		return err
	}
	defer t.Close()

	layout, err := target.ResolveLayout(t.Runner, cfg.Server)
	if err != nil {
		return err
	}

	if err := bind.RemoveZone(t.Runner, log, domain, layout); err != nil {
		return err
	}

	fmt.Printf("✓ Zone %s removed from %s\n", domain, t.Describe())
	return nil
}
