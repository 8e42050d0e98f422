package status

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/systemd"
	"github.com/catalystcommunity/bindforge/internal/target"
	"github.com/urfave/cli/v3"
)

// Command is the top-level status command
var Command = &cli.Command{
	Name:  "status",
	Usage: "Show the state of the DNS server",
	Description: `Show whether BIND is installed, whether its configuration passes
named-checkconf, the systemd service state, and the declared zones.

Examples:
  bindforge status
  bindforge status --host ns1`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "configured remote host (default: local machine)",
		},
	},
	Action: runStatus,
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	t, err := target.Resolve(cfg, cmd.String("host"))
	if err != nil {
		return err
	}
	defer t.Close()

	fmt.Printf("DNS server status on %s\n\n", t.Describe())

	if !bind.IsInstalled(t.Runner) {
		fmt.Println("❌ BIND is not installed")
		fmt.Println("\nRun: bindforge provision <domain> <ip>")
		return nil
	}
	fmt.Println("✓ BIND is installed")

	layout, err := target.ResolveLayout(t.Runner, cfg.Server)
	if err != nil {
		return err
	}
	if layout == nil {
		detected, err := bind.DetectLayout(t.Runner)
		if err != nil {
			return err
		}
		layout = &detected
	}

	if err := bind.CheckConf(t.Runner, *layout); err != nil {
		fmt.Printf("❌ Configuration check failed: %v\n", err)
	} else {
		fmt.Println("✓ Configuration passes named-checkconf")
	}

	svc, err := systemd.GetServiceStatus(t.Runner, layout.Service)
	if err != nil {
		fmt.Printf("❌ Service %s: %v\n", layout.Service, err)
	} else {
		marker := "❌"
		if svc.Active {
			marker = "✓"
		}
		fmt.Printf("%s Service %s: %s/%s (enabled: %t)\n",
			marker, layout.Service, svc.ActiveState, svc.SubState, svc.Enabled)
	}

	conf, err := bind.ReadConf(t.Runner, *layout)
	if err != nil {
		return err
	}
	zones := bind.ListZones(conf)
	if len(zones) == 0 {
		fmt.Println("\nNo zones declared")
		return nil
	}

	fmt.Println("\nZones:")
	for _, z := range zones {
		fmt.Printf("  - %s (%s)\n", z, layout.ZoneFilePath(z))
	}

	return nil
}
