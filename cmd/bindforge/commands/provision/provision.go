package provision

import (
	"context"
	"fmt"
	"time"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/dnscheck"
	"github.com/catalystcommunity/bindforge/internal/logging"
	"github.com/catalystcommunity/bindforge/internal/sudo"
	"github.com/catalystcommunity/bindforge/internal/target"
	"github.com/urfave/cli/v3"
)

// Command is the top-level provision command
var Command = &cli.Command{
	Name:      "provision",
	Usage:     "Install and configure an authoritative DNS server for a domain",
	ArgsUsage: "<domain> <ip>",
	Description: `Provision a BIND server answering authoritatively for a single domain.

The sequence installs the BIND packages, writes a zone file with apex and
www A records pointing at the given IP, declares the zone in the server
configuration, validates both with named-checkconf and named-checkzone,
opens port 53, and enables and restarts the service.

Re-running against the same domain replaces the zone declaration and zone
file rather than duplicating them, so the command is safe to repeat after
a failure or an IP change.

By default the local machine is provisioned. Use --host to provision a
remote host defined in the configuration file over SSH.

Examples:
  bindforge provision example.com 192.0.2.10
  bindforge provision example.com 192.0.2.10 --host ns1
  bindforge provision example.com 192.0.2.10 --skip-install --skip-firewall`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "configured remote host to provision (default: local machine)",
		},
		&cli.BoolFlag{
			Name:  "skip-install",
			Usage: "skip package installation",
		},
		&cli.BoolFlag{
			Name:  "skip-firewall",
			Usage: "skip opening the DNS ports",
		},
		&cli.BoolFlag{
			Name:  "skip-verify",
			Usage: "skip the final resolution check",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "append provisioning output to this file",
		},
		&cli.DurationFlag{
			Name:  "wait",
			Usage: "how long to wait for the service after restart",
			Value: 30 * time.Second,
		},
	},
	Action: runProvision,
}

func runProvision(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("domain and IP address are required")
	}
	domain := cmd.Args().Get(0)
	ip := cmd.Args().Get(1)

	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.Setup(logging.FilePath(cmd.String("log-file"), cfg.LogFile), cmd.Bool("verbose"))

	t, err := target.Resolve(cfg, cmd.String("host"))
	if err != nil {
		return err
	}
	defer t.Close()

	if status, err := sudo.GetStatus(t.Runner); err == nil {
		switch status {
		case sudo.NotInstalled:
			return fmt.Errorf("sudo is not installed on %s", t.Describe())
		case sudo.NoAccess:
			return fmt.Errorf("user has no sudo access on %s", t.Describe())
		case sudo.RequiresPassword:
			log.Warnf("sudo on %s requires a password, commands may prompt", t.Describe())
		}
	}

	layout, err := target.ResolveLayout(t.Runner, cfg.Server)
	if err != nil {
		return err
	}

	zoneData, err := bind.Provision(t.Runner, log, bind.ProvisionOptions{
		Domain:       domain,
		IP:           ip,
		SkipInstall:  cmd.Bool("skip-install"),
		SkipFirewall: cmd.Bool("skip-firewall"),
		Layout:       layout,
		ServiceWait:  cmd.Duration("wait"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ DNS server provisioned for %s on %s\n", domain, t.Describe())
	fmt.Printf("  Zone file: %s\n", zoneData.ZoneFilePath)
	fmt.Printf("  Serial:    %s\n", zoneData.Serial)

	if cmd.Bool("skip-verify") {
		return nil
	}

	// The server can lag a moment behind the restart. A failed lookup
	// here is a warning, not a provisioning failure.
	if err := dnscheck.Verify(ip, domain, ip, dnscheck.DefaultTimeout); err != nil {
		log.WithError(err).Warn("verification query did not succeed yet")
		fmt.Printf("⚠ %s did not resolve yet, re-check with: bindforge test %s --server %s\n", domain, domain, ip)
		return nil
	}

	fmt.Printf("✓ %s resolves to %s\n", domain, ip)
	return nil
}
