package main

import (
	"context"
	"fmt"
	"os"

	configcmd "github.com/catalystcommunity/bindforge/cmd/bindforge/commands/config"
	provisioncmd "github.com/catalystcommunity/bindforge/cmd/bindforge/commands/provision"
	statuscmd "github.com/catalystcommunity/bindforge/cmd/bindforge/commands/status"
	verifycmd "github.com/catalystcommunity/bindforge/cmd/bindforge/commands/verify"
	zonecmd "github.com/catalystcommunity/bindforge/cmd/bindforge/commands/zone"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "bindforge",
		Usage:   "Provision and manage a single-domain authoritative DNS server",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("BINDFORGE_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			provisioncmd.Command,
			zonecmd.Command,
			statuscmd.Command,
			verifycmd.Command,
			configcmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
