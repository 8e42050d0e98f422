package bind

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/catalystcommunity/bindforge/internal/executor"
)

// heredoc marker for remote file writes
const eofMarker = "BINDFORGE_EOF"

// StripZoneStanza removes the zone block for domain from named.conf
// content, leaving every other stanza untouched. Missing stanzas are a
// no-op, which is what makes re-provisioning a domain idempotent.
func StripZoneStanza(conf, domain string) string {
	lines := strings.Split(conf, "\n")
	out := make([]string, 0, len(lines))

	opener := regexp.MustCompile(`^\s*zone\s+"` + regexp.QuoteMeta(domain) + `"\s*(IN\s*)?\{`)

	depth := 0
	skipping := false
	for _, line := range lines {
		if !skipping {
			if opener.MatchString(line) {
				skipping = true
				depth = strings.Count(line, "{") - strings.Count(line, "}")
				if depth <= 0 && strings.Contains(line, "};") {
					skipping = false
				}
				continue
			}
			out = append(out, line)
			continue
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 {
			skipping = false
		}
	}

	result := strings.Join(out, "\n")

	// Collapse runs of blank lines left behind by the removed block
	result = regexp.MustCompile(`\n{3,}`).ReplaceAllString(result, "\n\n")
	return result
}

// HasZoneStanza reports whether conf declares a zone for domain
func HasZoneStanza(conf, domain string) bool {
	opener := regexp.MustCompile(`(?m)^\s*zone\s+"` + regexp.QuoteMeta(domain) + `"\s*(IN\s*)?\{`)
	return opener.MatchString(conf)
}

// ListZones returns the zone names declared in conf, in file order
func ListZones(conf string) []string {
	re := regexp.MustCompile(`(?m)^\s*zone\s+"([^"]+)"\s*(IN\s*)?\{`)
	matches := re.FindAllStringSubmatch(conf, -1)

	zones := make([]string, 0, len(matches))
	for _, m := range matches {
		zones = append(zones, m[1])
	}
	return zones
}

// ReadConf reads the zone configuration file from the host. A missing
// file reads as empty: the first provisioned zone creates it.
func ReadConf(r executor.Runner, layout Layout) (string, error) {
	result, err := r.Exec(fmt.Sprintf("sudo cat %s 2>/dev/null || true", layout.ConfFile))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", layout.ConfFile, err)
	}
	return result.Stdout, nil
}

// WriteConf writes the zone configuration file on the host
func WriteConf(r executor.Runner, layout Layout, content string) error {
	if err := writeRemoteFile(r, layout.ConfFile, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", layout.ConfFile, err)
	}
	return nil
}

// UpsertZoneStanza replaces any existing stanza for the domain with the
// given one. Re-runs for the same domain therefore leave exactly one
// stanza in the config.
func UpsertZoneStanza(r executor.Runner, layout Layout, domain, stanza string) error {
	conf, err := ReadConf(r, layout)
	if err != nil {
		return err
	}

	conf = StripZoneStanza(conf, domain)
	conf = strings.TrimRight(conf, "\n")
	if conf != "" {
		conf += "\n\n"
	}
	conf += strings.TrimRight(stanza, "\n") + "\n"

	return WriteConf(r, layout, conf)
}

// DropZoneStanza removes the stanza for the domain, if present
func DropZoneStanza(r executor.Runner, layout Layout, domain string) error {
	conf, err := ReadConf(r, layout)
	if err != nil {
		return err
	}

	if !HasZoneStanza(conf, domain) {
		return nil
	}

	return WriteConf(r, layout, StripZoneStanza(conf, domain))
}

// writeRemoteFile writes content to a file on the host via a heredoc
// and sets world-readable permissions
func writeRemoteFile(r executor.Runner, path, content string) error {
	cmd := fmt.Sprintf("sudo tee %s > /dev/null <<'%s'\n%s\n%s", path, eofMarker, strings.TrimRight(content, "\n"), eofMarker)
	if _, err := executor.Run(r, cmd); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	chmodCmd := fmt.Sprintf("sudo chmod 644 %s", path)
	if _, err := executor.Run(r, chmodCmd); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	return nil
}
