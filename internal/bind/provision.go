package bind

import (
	"fmt"
	"time"

	"github.com/catalystcommunity/bindforge/internal/executor"
	"github.com/catalystcommunity/bindforge/internal/firewall"
	"github.com/catalystcommunity/bindforge/internal/systemd"
	"github.com/catalystcommunity/bindforge/internal/validate"
	"github.com/catalystcommunity/bindforge/internal/zone"
	"github.com/sirupsen/logrus"
)

// ProvisionOptions controls the provisioning sequence
type ProvisionOptions struct {
	Domain string
	IP     string

	// SkipInstall skips the package installation step
	SkipInstall bool
	// SkipFirewall skips opening the DNS ports
	SkipFirewall bool

	// Layout overrides distro detection when non-nil
	Layout *Layout

	// ServiceWait bounds the post-restart readiness wait
	ServiceWait time.Duration
}

// Provision runs the full provisioning sequence: validate inputs, install
// the server, write the zone file, rewrite the zone config, validate with
// the BIND checkers, open the firewall, and enable+restart the service.
// Every step is fatal on failure. The caller performs the final
// warning-only resolution check.
func Provision(r executor.Runner, log *logrus.Logger, opts ProvisionOptions) (*zone.Data, error) {
	if err := validate.Domain(opts.Domain); err != nil {
		log.WithField("domain", opts.Domain).Error("domain validation failed")
		return nil, err
	}
	if err := validate.IP(opts.IP); err != nil {
		log.WithField("ip", opts.IP).Error("IP validation failed")
		return nil, err
	}

	layout, err := resolveLayout(r, opts.Layout)
	if err != nil {
		return nil, err
	}
	log.WithField("family", layout.Family).Info("detected distro family")

	if opts.SkipInstall {
		log.Info("skipping package installation")
	} else if IsInstalled(r) {
		log.Info("BIND already installed")
	} else {
		log.WithField("packages", layout.Packages).Info("installing BIND")
		if err := InstallServer(r, layout); err != nil {
			return nil, err
		}
	}

	data := zone.New(opts.Domain, opts.IP, layout.ZoneFilePath(opts.Domain))

	body, err := data.RenderFile()
	if err != nil {
		return nil, err
	}
	stanza, err := data.RenderStanza()
	if err != nil {
		return nil, err
	}

	log.WithField("path", data.ZoneFilePath).Info("writing zone file")
	if err := WriteZoneFile(r, layout, data.ZoneFilePath, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	log.WithField("conf", layout.ConfFile).Info("updating zone configuration")
	if err := UpsertZoneStanza(r, layout, opts.Domain, stanza); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	log.Info("validating configuration")
	if err := CheckConf(r, layout); err != nil {
		return nil, err
	}
	if err := CheckZone(r, opts.Domain, data.ZoneFilePath); err != nil {
		return nil, err
	}

	if opts.SkipFirewall {
		log.Info("skipping firewall configuration")
	} else {
		kind := firewall.Detect(r)
		if kind == firewall.KindNone {
			log.Warn("no supported firewall tool found, leaving ports untouched")
		} else {
			log.WithField("firewall", kind.String()).Info("opening DNS ports")
			if err := firewall.OpenDNSPorts(r, kind); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
			}
		}
	}

	log.WithField("service", layout.Service).Info("enabling and restarting service")
	if err := systemd.EnableService(r, layout.Service); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}
	if err := systemd.RestartService(r, layout.Service); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	wait := opts.ServiceWait
	if wait == 0 {
		wait = 30 * time.Second
	}
	if err := systemd.WaitForService(r, layout.Service, wait); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	log.WithFields(logrus.Fields{
		"domain": opts.Domain,
		"ip":     opts.IP,
		"serial": data.Serial,
	}).Info("zone provisioned")

	return data, nil
}

// AddZone writes the zone for a domain on an already provisioned server
// and reloads it. This is the re-run path: any prior stanza for the
// domain is replaced.
func AddZone(r executor.Runner, log *logrus.Logger, domain, ip string, layoutOverride *Layout) (*zone.Data, error) {
	if err := validate.Domain(domain); err != nil {
		log.WithField("domain", domain).Error("domain validation failed")
		return nil, err
	}
	if err := validate.IP(ip); err != nil {
		log.WithField("ip", ip).Error("IP validation failed")
		return nil, err
	}

	layout, err := resolveLayout(r, layoutOverride)
	if err != nil {
		return nil, err
	}

	data := zone.New(domain, ip, layout.ZoneFilePath(domain))

	body, err := data.RenderFile()
	if err != nil {
		return nil, err
	}
	stanza, err := data.RenderStanza()
	if err != nil {
		return nil, err
	}

	if err := WriteZoneFile(r, layout, data.ZoneFilePath, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}
	if err := UpsertZoneStanza(r, layout, domain, stanza); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	if err := CheckConf(r, layout); err != nil {
		return nil, err
	}
	if err := CheckZone(r, domain, data.ZoneFilePath); err != nil {
		return nil, err
	}

	if err := systemd.ReloadService(r, layout.Service); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	log.WithFields(logrus.Fields{"domain": domain, "serial": data.Serial}).Info("zone added")
	return data, nil
}

// RemoveZone drops the stanza and zone file for a domain and reloads
func RemoveZone(r executor.Runner, log *logrus.Logger, domain string, layoutOverride *Layout) error {
	if err := validate.Domain(domain); err != nil {
		return err
	}

	layout, err := resolveLayout(r, layoutOverride)
	if err != nil {
		return err
	}

	if err := DropZoneStanza(r, layout, domain); err != nil {
		return fmt.Errorf("%w: %v", ErrToolFailure, err)
	}
	if err := RemoveZoneFile(r, layout, domain); err != nil {
		return fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	if err := CheckConf(r, layout); err != nil {
		return err
	}

	if err := systemd.ReloadService(r, layout.Service); err != nil {
		return fmt.Errorf("%w: %v", ErrToolFailure, err)
	}

	log.WithField("domain", domain).Info("zone removed")
	return nil
}

func resolveLayout(r executor.Runner, override *Layout) (Layout, error) {
	if override != nil {
		return *override, nil
	}
	return DetectLayout(r)
}
