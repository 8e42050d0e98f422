package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/dnscheck"
	"github.com/urfave/cli/v3"
)

// Command is the top-level test command
var Command = &cli.Command{
	Name:      "test",
	Usage:     "Test DNS resolution against a server",
	ArgsUsage: "<hostname>",
	Description: `Query a DNS server directly for the A records of a hostname.

The server defaults to the address of the configured host named by
--host, or must be given with --server. Use --expect to fail unless the
answer contains a specific IP.

Examples:
  bindforge test example.com --server 192.0.2.10
  bindforge test www.example.com --server 192.0.2.10 --expect 192.0.2.10
  bindforge test example.com --host ns1`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "server",
			Usage: "DNS server address to query",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "configured host whose address is queried",
		},
		&cli.StringFlag{
			Name:  "expect",
			Usage: "fail unless the answer contains this IP",
		},
	},
	Action: runTest,
}

func runTest(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("hostname is required")
	}
	hostname := cmd.Args().Get(0)

	server := cmd.String("server")
	if server == "" && cmd.String("host") != "" {
		cfg, err := config.LoadOrDefault(cmd.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		h, err := cfg.GetHost(cmd.String("host"))
		if err != nil {
			return err
		}
		server = h.Address
	}
	if server == "" {
		return fmt.Errorf("a DNS server is required, use --server or --host")
	}

	fmt.Printf("Testing DNS resolution for: %s\n", hostname)
	fmt.Printf("DNS server: %s\n\n", server)

	answer, err := dnscheck.QueryA(server, hostname, dnscheck.DefaultTimeout)
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	fmt.Printf("✓ Resolved to: %s (TTL %d)\n", strings.Join(answer.IPs, ", "), answer.TTL)

	if expect := cmd.String("expect"); expect != "" {
		for _, ip := range answer.IPs {
			if ip == expect {
				fmt.Printf("✓ Answer contains expected IP %s\n", expect)
				return nil
			}
		}
		return fmt.Errorf("answer %v does not contain expected IP %s", answer.IPs, expect)
	}

	return nil
}
