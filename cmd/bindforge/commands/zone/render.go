package zone

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/logging"
	"github.com/catalystcommunity/bindforge/internal/validate"
	internalzone "github.com/catalystcommunity/bindforge/internal/zone"
	"github.com/urfave/cli/v3"
)

var renderCommand = &cli.Command{
	Name:      "render",
	Usage:     "Print the zone file and declaration without touching a server",
	ArgsUsage: "<domain> <ip>",
	Description: `Render the zone file and configuration stanza that provisioning
would write for the given domain and IP, printed to stdout. Nothing is
installed or modified.

Example:
  bindforge zone render example.com 192.0.2.10`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "family",
			Usage: "distro family for paths (debian, rhel)",
			Value: "debian",
		},
	},
	Action: runRender,
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("domain and IP address are required")
	}
	domain := cmd.Args().Get(0)
	ip := cmd.Args().Get(1)

	log := logging.Setup("", cmd.Bool("verbose"))
	if err := validate.Domain(domain); err != nil {
		log.WithField("domain", domain).Error("domain validation failed")
		return err
	}
	if err := validate.IP(ip); err != nil {
		log.WithField("ip", ip).Error("IP validation failed")
		return err
	}

	var layout bind.Layout
	switch cmd.String("family") {
	case "debian":
		layout = bind.DebianLayout()
	case "rhel":
		layout = bind.RHELLayout()
	default:
		return fmt.Errorf("unknown family %q, expected debian or rhel", cmd.String("family"))
	}

	data := internalzone.New(domain, ip, layout.ZoneFilePath(domain))

	stanza, err := data.RenderStanza()
	if err != nil {
		return err
	}
	file, err := data.RenderFile()
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n%s\n", layout.ConfFile, stanza)
	fmt.Printf("\n# %s\n%s", data.ZoneFilePath, file)
	return nil
}
