// Package bind provisions and manages a BIND authoritative nameserver on
// a Linux host through shell commands, local or over SSH.
package bind

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// ErrToolFailure is the terminal error class for failed external commands
var ErrToolFailure = errors.New("external tool failure")

// Layout describes where a distro family keeps BIND's pieces
type Layout struct {
	// Family is the distro family: debian or rhel
	Family string
	// InstallCmd is the package-manager install command prefix
	InstallCmd string
	// Packages are the packages providing the server and its tools
	Packages []string
	// Service is the systemd unit name
	Service string
	// ConfFile is the file holding zone declarations
	ConfFile string
	// ZoneDir is the directory zone files are written to
	ZoneDir string
	// User/Group own the zone files
	User  string
	Group string
}

// DebianLayout is the layout for apt-based systems
func DebianLayout() Layout {
	return Layout{
		Family:     "debian",
		InstallCmd: "sudo DEBIAN_FRONTEND=noninteractive apt-get install -y",
		Packages:   []string{"bind9", "bind9utils", "dnsutils"},
		Service:    "named",
		ConfFile:   "/etc/bind/named.conf.local",
		ZoneDir:    "/etc/bind/zones",
		User:       "bind",
		Group:      "bind",
	}
}

// RHELLayout is the layout for dnf/yum-based systems
func RHELLayout() Layout {
	return Layout{
		Family:     "rhel",
		InstallCmd: "sudo dnf install -y",
		Packages:   []string{"bind", "bind-utils"},
		Service:    "named",
		ConfFile:   "/etc/named.conf",
		ZoneDir:    "/var/named",
		User:       "named",
		Group:      "named",
	}
}

// ZoneFilePath returns the zone file path for a domain under this layout
func (l Layout) ZoneFilePath(domain string) string {
	return path.Join(l.ZoneDir, "db."+domain)
}

// DetectLayout determines the distro family from the package manager
// present on the host
func DetectLayout(r executor.Runner) (Layout, error) {
	result, err := r.Exec("command -v apt-get")
	if err != nil {
		return Layout{}, fmt.Errorf("failed to detect package manager: %w", err)
	}
	if result.ExitCode == 0 {
		return DebianLayout(), nil
	}

	result, err = r.Exec("command -v dnf")
	if err != nil {
		return Layout{}, fmt.Errorf("failed to detect package manager: %w", err)
	}
	if result.ExitCode == 0 {
		return RHELLayout(), nil
	}

	// Older RHEL-family hosts only carry yum
	result, err = r.Exec("command -v yum")
	if err != nil {
		return Layout{}, fmt.Errorf("failed to detect package manager: %w", err)
	}
	if result.ExitCode == 0 {
		layout := RHELLayout()
		layout.InstallCmd = "sudo yum install -y"
		return layout, nil
	}

	return Layout{}, fmt.Errorf("%w: no supported package manager found (apt-get, dnf, yum)", ErrToolFailure)
}

// InstallPackagesCmd returns the full install command for this layout
func (l Layout) InstallPackagesCmd() string {
	return l.InstallCmd + " " + strings.Join(l.Packages, " ")
}
