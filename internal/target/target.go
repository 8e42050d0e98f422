// Package target resolves where commands run: the local machine, or a
// remote host from the configuration reached over SSH. Both sides are
// exposed through executor.Runner so the provisioning code doesn't care.
package target

import (
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/executor"
	"github.com/catalystcommunity/bindforge/internal/ssh"
)

// Target is a resolved execution target
type Target struct {
	Runner executor.Runner

	// Host is the configured host name, empty for the local machine
	Host string

	conn *ssh.Connection
}

// Resolve builds a Target for the named config host, or the local
// machine when hostName is empty.
func Resolve(cfg *config.Config, hostName string) (*Target, error) {
	if hostName == "" {
		return &Target{Runner: executor.NewLocalRunner()}, nil
	}

	h, err := cfg.GetHost(hostName)
	if err != nil {
		return nil, err
	}

	auth, err := ssh.KeyFileAuth(h.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load SSH key for host %s: %w", h.Name, err)
	}

	port := h.Port
	if port == 0 {
		port = 22
	}

	conn, err := ssh.Connect(&ssh.ConnectionOptions{
		Host:       h.Address,
		Port:       port,
		User:       h.User,
		AuthMethod: auth,
		Timeout:    30,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", h.Name, err)
	}

	return &Target{Runner: conn, Host: h.Name, conn: conn}, nil
}

// Close releases the SSH connection if one was opened
func (t *Target) Close() {
	if t.conn != nil {
		_ = t.conn.Close()
	}
}

// Describe names the target for log and error messages
func (t *Target) Describe() string {
	if t.Host == "" {
		return "local machine"
	}
	return t.Host
}

// ResolveLayout turns the server section of the config into a BIND
// layout override. It returns nil when nothing is overridden, leaving
// distro detection to the provisioning code. Partial overrides without
// a family trigger detection here so the remaining fields have values.
func ResolveLayout(r executor.Runner, server config.ServerConfig) (*bind.Layout, error) {
	var layout bind.Layout

	switch server.Family {
	case "debian":
		layout = bind.DebianLayout()
	case "rhel":
		layout = bind.RHELLayout()
	default:
		if server.ConfFile == "" && server.ZoneDir == "" && server.Service == "" {
			return nil, nil
		}
		detected, err := bind.DetectLayout(r)
		if err != nil {
			return nil, err
		}
		layout = detected
	}

	if server.ConfFile != "" {
		layout.ConfFile = server.ConfFile
	}
	if server.ZoneDir != "" {
		layout.ZoneDir = server.ZoneDir
	}
	if server.Service != "" {
		layout.Service = server.Service
	}

	return &layout, nil
}
