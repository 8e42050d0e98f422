// Package sudo inspects sudo access on the target host before any
// privileged provisioning step runs.
package sudo

import (
	"fmt"
	"strings"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// Status represents the state of sudo access for a user
type Status int

const (
	// NotInstalled means the sudo command is not available on the system
	NotInstalled Status = iota
	// NoAccess means sudo is installed but user is not in sudoers
	NoAccess
	// RequiresPassword means user has sudo but must enter a password
	RequiresPassword
	// Passwordless means user has full passwordless sudo access
	Passwordless
)

// String returns a human-readable description of the sudo status
func (s Status) String() string {
	switch s {
	case NotInstalled:
		return "sudo not installed"
	case NoAccess:
		return "user not in sudoers"
	case RequiresPassword:
		return "sudo requires password"
	case Passwordless:
		return "passwordless sudo configured"
	default:
		return "unknown"
	}
}

// GetStatus returns the detailed sudo status for the connected user
func GetStatus(r executor.Runner) (Status, error) {
	// First check if sudo command exists
	result, err := r.Exec("which sudo")
	if err != nil {
		return NotInstalled, fmt.Errorf("failed to check for sudo: %w", err)
	}

	if result.ExitCode != 0 {
		return NotInstalled, nil
	}

	// Check if user can run sudo without password
	result, err = r.Exec("sudo -n true 2>&1")
	if err != nil {
		return NoAccess, fmt.Errorf("failed to test sudo access: %w", err)
	}

	if result.ExitCode == 0 {
		return Passwordless, nil
	}

	// Check output for password requirement indicator
	output := result.Stderr
	if output == "" {
		output = result.Stdout
	}

	if strings.Contains(output, "password is required") ||
		strings.Contains(output, "a password is required") {
		return RequiresPassword, nil
	}

	return NoAccess, nil
}
