package zone

import "github.com/urfave/cli/v3"

// Command is the top-level zone command
var Command = &cli.Command{
	Name:  "zone",
	Usage: "Manage DNS zones on a provisioned server",
	Description: `Zone management commands for a BIND server.

These commands assume the server was already provisioned. They add and
remove zone declarations and zone files, print what would be written,
and list the zones the server currently declares.

Typical workflow:
  1. bindforge provision <domain> <ip>   - Provision the server
  2. bindforge zone add <domain> <ip>    - Add further zones
  3. bindforge zone list                 - List declared zones
  4. bindforge zone remove <domain>      - Remove a zone`,
	Commands: []*cli.Command{
		addCommand,
		removeCommand,
		renderCommand,
		listCommand,
	},
}
