// Package firewall opens the DNS ports through whichever firewall
// frontend the host runs.
package firewall

import (
	"fmt"
	"strings"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// Kind identifies the firewall frontend detected on the host
type Kind int

const (
	// KindNone means no supported firewall tool was found
	KindNone Kind = iota
	// KindFirewalld is firewalld managed via firewall-cmd
	KindFirewalld
	// KindUFW is the Uncomplicated Firewall
	KindUFW
)

// String returns a human-readable name for the firewall kind
func (k Kind) String() string {
	switch k {
	case KindFirewalld:
		return "firewalld"
	case KindUFW:
		return "ufw"
	default:
		return "none"
	}
}

// Detect determines which firewall frontend to configure on the host.
// firewalld wins over ufw when both binaries exist, since only one of
// them is ever actually running. firewalld must report running because
// firewall-cmd cannot apply rules without the daemon; ufw is accepted
// on presence alone, as `ufw allow` persists rules even while the
// firewall is inactive, so they take effect if it is enabled later.
func Detect(r executor.Runner) Kind {
	result, err := r.Exec("command -v firewall-cmd")
	if err == nil && result.ExitCode == 0 {
		state, err := r.Exec("sudo firewall-cmd --state")
		if err == nil && state.ExitCode == 0 && strings.TrimSpace(state.Stdout) == "running" {
			return KindFirewalld
		}
	}

	result, err = r.Exec("command -v ufw")
	if err == nil && result.ExitCode == 0 {
		return KindUFW
	}

	return KindNone
}

// OpenDNSPorts opens 53/tcp and 53/udp through the given firewall.
// KindNone is an error; callers decide whether that is fatal.
func OpenDNSPorts(r executor.Runner, kind Kind) error {
	switch kind {
	case KindFirewalld:
		cmds := []string{
			"sudo firewall-cmd --permanent --add-service=dns",
			"sudo firewall-cmd --reload",
		}
		for _, cmd := range cmds {
			if _, err := executor.Run(r, cmd); err != nil {
				return fmt.Errorf("failed to open DNS ports via firewalld: %w", err)
			}
		}
		return nil

	case KindUFW:
		cmds := []string{
			"sudo ufw allow 53/tcp",
			"sudo ufw allow 53/udp",
		}
		for _, cmd := range cmds {
			if _, err := executor.Run(r, cmd); err != nil {
				return fmt.Errorf("failed to open DNS ports via ufw: %w", err)
			}
		}
		return nil

	default:
		return fmt.Errorf("no supported firewall tool found")
	}
}
