package bind

import (
	"fmt"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// CheckConf validates the full server configuration with named-checkconf
func CheckConf(r executor.Runner, layout Layout) error {
	if _, err := executor.Run(r, "sudo named-checkconf"); err != nil {
		return fmt.Errorf("%w: named-checkconf rejected %s: %v", ErrToolFailure, layout.ConfFile, err)
	}
	return nil
}

// CheckZone validates a single zone file with named-checkzone
func CheckZone(r executor.Runner, domain, zonePath string) error {
	cmd := fmt.Sprintf("sudo named-checkzone %s %s", domain, zonePath)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("%w: named-checkzone rejected zone %s: %v", ErrToolFailure, domain, err)
	}
	return nil
}
