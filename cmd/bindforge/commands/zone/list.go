package zone

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/target"
	"github.com/urfave/cli/v3"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List zones declared on the server",
	Description: `List the zones declared in the server's zone configuration file.

Example:
  bindforge zone list --host ns1`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "configured remote host (default: local machine)",
		},
	},
	Action: runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadOrDefault(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	t, err := target.Resolve(cfg, cmd.String("host"))
	if err != nil {
		return err
	}
	defer t.Close()

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

	conf, err := bind.ReadConf(t.Runner, *layout)
	if err != nil {
		return err
	}

	zones := bind.ListZones(conf)
	if len(zones) == 0 {
		fmt.Println("No zones declared")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ZONE\tFILE")
	fmt.Fprintln(w, "----\t----")
	for _, z := range zones {
		fmt.Fprintf(w, "%s\t%s\n", z, layout.ZoneFilePath(z))
	}
	w.Flush()

	return nil
}
