package bind

import (
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// IsInstalled reports whether the BIND server binary is present
func IsInstalled(r executor.Runner) bool {
	result, err := r.Exec("command -v named")
	return err == nil && result.ExitCode == 0
}

// InstallServer installs the BIND server and tool packages through the
// layout's package manager. The package index is refreshed first on
// apt-based systems, matching what the tool expects from a fresh host.
func InstallServer(r executor.Runner, layout Layout) error {
	if layout.Family == "debian" {
		if _, err := executor.Run(r, "sudo apt-get update -qq"); err != nil {
			return fmt.Errorf("%w: failed to update package index: %v", ErrToolFailure, err)
		}
	}

	if _, err := executor.Run(r, layout.InstallPackagesCmd()); err != nil {
		return fmt.Errorf("%w: failed to install BIND packages: %v", ErrToolFailure, err)
	}

	return nil
}
