package bind

import (
	"fmt"
	"path"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// WriteZoneFile writes a rendered zone file to the host and hands
// ownership to the BIND service user
func WriteZoneFile(r executor.Runner, layout Layout, zonePath, content string) error {
	dir := path.Dir(zonePath)
	mkdirCmd := fmt.Sprintf("sudo mkdir -p %s && sudo chmod 755 %s", dir, dir)
	if _, err := executor.Run(r, mkdirCmd); err != nil {
		return fmt.Errorf("failed to create zone directory %s: %w", dir, err)
	}

	if err := writeRemoteFile(r, zonePath, content); err != nil {
		return err
	}

	chownCmd := fmt.Sprintf("sudo chown %s:%s %s", layout.User, layout.Group, zonePath)
	if _, err := executor.Run(r, chownCmd); err != nil {
		return fmt.Errorf("failed to set ownership on %s: %w", zonePath, err)
	}

	return nil
}

// RemoveZoneFile deletes the zone file for a domain, if present
func RemoveZoneFile(r executor.Runner, layout Layout, domain string) error {
	cmd := fmt.Sprintf("sudo rm -f %s", layout.ZoneFilePath(domain))
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to remove zone file for %s: %w", domain, err)
	}
	return nil
}
