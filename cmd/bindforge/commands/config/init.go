package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/urfave/cli/v3"
)

const configTemplate = `# bindforge configuration
version: "1"

# Where provisioning output is appended
log_file: /var/log/bindforge.log

# Optional overrides for the detected BIND layout
# server:
#   family: debian        # debian or rhel
#   conf_file: /etc/bind/named.conf.local
#   zone_dir: /etc/bind/zones
#   service: named

# Remote hosts reachable over SSH
# hosts:
#   - name: ns1
#     address: 192.0.2.10
#     port: 22
#     user: admin
#     key_path: ~/.ssh/id_ed25519
`

// InitCommand creates a new config file
var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Create a new configuration file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "name for the config file (without .yaml extension)",
			Value:   "config",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "overwrite existing config file",
		},
	},
	Action: runInit,
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	configDir, err := config.EnsureConfigDir()
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, cmd.String("name")+".yaml")

	if _, err := os.Stat(configPath); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Add remote hosts to the config file, or skip this for local use")
	fmt.Println("  2. Run: bindforge provision <domain> <ip>")
	return nil
}
