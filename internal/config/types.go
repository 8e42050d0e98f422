package config

import (
	"fmt"
	"net"
)

// Config is the bindforge configuration file
type Config struct {
	Version string       `yaml:"version"`
	Server  ServerConfig `yaml:"server,omitempty"`
	LogFile string       `yaml:"log_file,omitempty"`
	Hosts   []HostConfig `yaml:"hosts,omitempty"`
}

// ServerConfig overrides the detected BIND layout
type ServerConfig struct {
	// Family forces the distro family (debian, rhel); empty means detect
	Family string `yaml:"family,omitempty"`
	// ConfFile overrides the zone configuration file path
	ConfFile string `yaml:"conf_file,omitempty"`
	// ZoneDir overrides the zone file directory
	ZoneDir string `yaml:"zone_dir,omitempty"`
	// Service overrides the systemd unit name
	Service string `yaml:"service,omitempty"`
}

// HostConfig describes a remote host reachable over SSH
type HostConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Port    int    `yaml:"port,omitempty"`
	User    string `yaml:"user"`
	KeyPath string `yaml:"key_path"`
}

// DefaultLogFile is where provisioning output is appended when the
// config doesn't say otherwise
const DefaultLogFile = "/var/log/bindforge.log"

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Version: "1",
		LogFile: DefaultLogFile,
	}
}

// Validate performs validation on the Config struct
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}

	if c.Server.Family != "" && c.Server.Family != "debian" && c.Server.Family != "rhel" {
		return fmt.Errorf("server family must be debian or rhel, got %q", c.Server.Family)
	}

	seen := make(map[string]bool)
	for i, h := range c.Hosts {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("host %d validation failed: %w", i, err)
		}
		if seen[h.Name] {
			return fmt.Errorf("duplicate host name %q", h.Name)
		}
		seen[h.Name] = true
	}

	return nil
}

// Validate performs validation on a HostConfig
func (h *HostConfig) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("host name is required")
	}
	if h.Address == "" {
		return fmt.Errorf("host address is required")
	}
	if h.User == "" {
		return fmt.Errorf("host user is required")
	}
	if h.Port < 0 || h.Port > 65535 {
		return fmt.Errorf("host port must be between 0 and 65535, got %d", h.Port)
	}
	if ip := net.ParseIP(h.Address); ip == nil {
		// Not an IP: require something domain-shaped rather than empty junk
		if len(h.Address) < 2 {
			return fmt.Errorf("host address %q is not an IP or hostname", h.Address)
		}
	}
	return nil
}

// GetHost returns the host with the given name
func (c *Config) GetHost(name string) (*HostConfig, error) {
	for i := range c.Hosts {
		if c.Hosts[i].Name == name {
			return &c.Hosts[i], nil
		}
	}
	return nil, fmt.Errorf("host %q not found in config", name)
}
