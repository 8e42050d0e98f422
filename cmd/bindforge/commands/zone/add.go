package zone

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/logging"
	"github.com/catalystcommunity/bindforge/internal/target"
	"github.com/urfave/cli/v3"
)

var addCommand = &cli.Command{
	Name:      "add",
	Usage:     "Add a zone to a provisioned server",
	ArgsUsage: "<domain> <ip>",
	Description: `Add an authoritative zone to an already provisioned server.

Writes the zone file, declares the zone in the server configuration,
validates both, and reloads the service. Adding a zone that already
exists replaces its declaration and zone file.

Examples:
  bindforge zone add example.com 192.0.2.10
  bindforge zone add example.com 192.0.2.10 --host ns1`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "configured remote host (default: local machine)",
		},
	},
	Action: runAdd,
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("domain and IP address are required")
	}
	domain := cmd.Args().Get(0)
	ip := cmd.Args().Get(1)

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

	zoneData, err := bind.AddZone(t.Runner, log, domain, ip, layout)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Zone %s added on %s\n", domain, t.Describe())
	fmt.Printf("  Zone file: %s\n", zoneData.ZoneFilePath)
	return nil
}
