// Package systemd wraps systemctl invocations for managing the DNS
// server service on the target host.
package systemd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// EnableService enables a systemd service to start on boot
func EnableService(r executor.Runner, name string) error {
	name = unitName(name)

	cmd := fmt.Sprintf("sudo systemctl enable %s", name)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to enable service %s: %w", name, err)
	}

	return nil
}

// StartService starts a systemd service
func StartService(r executor.Runner, name string) error {
	name = unitName(name)

	cmd := fmt.Sprintf("sudo systemctl start %s", name)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to start service %s: %w", name, err)
	}

	return nil
}

// StopService stops a systemd service
func StopService(r executor.Runner, name string) error {
	name = unitName(name)

	cmd := fmt.Sprintf("sudo systemctl stop %s", name)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to stop service %s: %w", name, err)
	}

	return nil
}

// RestartService restarts a systemd service
func RestartService(r executor.Runner, name string) error {
	name = unitName(name)

	cmd := fmt.Sprintf("sudo systemctl restart %s", name)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to restart service %s: %w", name, err)
	}

	return nil
}

// ReloadService reloads a systemd service without dropping connections
func ReloadService(r executor.Runner, name string) error {
	name = unitName(name)

	cmd := fmt.Sprintf("sudo systemctl reload %s", name)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to reload service %s: %w", name, err)
	}

	return nil
}

// ServiceStatus represents the status of a systemd service
type ServiceStatus struct {
	Name        string
	Loaded      bool
	Active      bool
	Running     bool
	Enabled     bool
	MainPID     int
	SubState    string // running, exited, dead, failed, etc.
	LoadState   string // loaded, not-found, bad-setting, error, masked
	ActiveState string // active, inactive, activating, deactivating, failed
	Since       time.Time
}

// GetServiceStatus queries the status of a systemd service
func GetServiceStatus(r executor.Runner, name string) (*ServiceStatus, error) {
	name = unitName(name)

	status := &ServiceStatus{
		Name: name,
	}

	cmd := fmt.Sprintf("systemctl show %s --no-pager", name)
	output, err := executor.Run(r, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get service status: %w", err)
	}

	// Parse systemctl show output
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := parts[1]

		switch key {
		case "LoadState":
			status.LoadState = value
			status.Loaded = value == "loaded"
		case "ActiveState":
			status.ActiveState = value
			status.Active = value == "active"
		case "SubState":
			status.SubState = value
			status.Running = value == "running"
		case "UnitFileState":
			status.Enabled = value == "enabled"
		case "MainPID":
			if pid, err := strconv.Atoi(value); err == nil {
				status.MainPID = pid
			}
		case "ActiveEnterTimestamp":
			if t, err := parseSystemdTimestamp(value); err == nil {
				status.Since = t
			}
		}
	}

	return status, nil
}

// IsServiceRunning checks if a service is currently running
func IsServiceRunning(r executor.Runner, name string) (bool, error) {
	status, err := GetServiceStatus(r, name)
	if err != nil {
		return false, err
	}
	return status.Running, nil
}

// WaitForService waits for a service to reach the running state
func WaitForService(r executor.Runner, name string, timeout time.Duration) error {
	name = unitName(name)

	deadline := time.Now().Add(timeout)

	for {
		status, err := GetServiceStatus(r, name)
		if err != nil {
			return fmt.Errorf("failed to get service status: %w", err)
		}

		if status.Running {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for service %s to start (current: %s)", name, status.SubState)
		}

		time.Sleep(1 * time.Second)
	}
}

func unitName(name string) string {
	if !strings.HasSuffix(name, ".service") {
		return name + ".service"
	}
	return name
}

// parseSystemdTimestamp parses systemd timestamp format
func parseSystemdTimestamp(ts string) (time.Time, error) {
	if ts == "" || ts == "n/a" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	// Systemd timestamps are in the format: "Day YYYY-MM-DD HH:MM:SS TZ"
	// Example: "Mon 2024-01-15 10:30:45 UTC"
	re := regexp.MustCompile(`\w+ (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) \w+`)
	matches := re.FindStringSubmatch(ts)
	if len(matches) < 2 {
		return time.Time{}, fmt.Errorf("invalid timestamp format: %s", ts)
	}

	t, err := time.Parse("2006-01-02 15:04:05", matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	return t, nil
}
