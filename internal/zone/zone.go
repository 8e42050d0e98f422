// Package zone renders BIND zone files and named.conf zone stanzas for a
// single authoritative domain.
package zone

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

// SOA timer defaults, in seconds
const (
	DefaultTTL     = 86400
	DefaultRefresh = 86400
	DefaultRetry   = 3600
	DefaultExpire  = 604800
	DefaultMinimum = 86400
)

// Data is the transient record rendered into the zone file and stanza.
// It is built once per invocation from the validated domain/IP pair.
type Data struct {
	Domain       string
	IP           string
	Nameserver   string // ns1.<domain>
	ZoneFilePath string

	// SOA fields
	Admin   string // rname host part, admin.<domain>. when "admin"
	Serial  string
	TTL     int
	Refresh int
	Retry   int
	Expire  int
	Minimum int
}

// New builds zone data for a validated domain/IP pair. The serial is the
// current time formatted YYYYMMDDHH.
func New(domain, ip, zoneFilePath string) *Data {
	return &Data{
		Domain:       domain,
		IP:           ip,
		Nameserver:   "ns1." + domain,
		ZoneFilePath: zoneFilePath,
		Admin:        "admin",
		Serial:       Serial(time.Now()),
		TTL:          DefaultTTL,
		Refresh:      DefaultRefresh,
		Retry:        DefaultRetry,
		Expire:       DefaultExpire,
		Minimum:      DefaultMinimum,
	}
}

// Serial formats a timestamp as a YYYYMMDDHH zone serial
func Serial(t time.Time) string {
	return t.Format("2006010215")
}

var stanzaTemplate = template.Must(template.New("stanza").Parse(`zone "{{.Domain}}" {
    type master;
    file "{{.ZoneFilePath}}";
    allow-transfer { none; };
};
`))

var fileTemplate = template.Must(template.New("zonefile").Parse(`$TTL {{.TTL}}
@ IN SOA {{.Nameserver}}. {{.Admin}}.{{.Domain}}. (
    {{.Serial}} ; Serial
    {{.Refresh}} ; Refresh
    {{.Retry}} ; Retry
    {{.Expire}} ; Expire
    {{.Minimum}} ) ; Minimum TTL
;
@ IN NS {{.Nameserver}}.
ns1 IN A {{.IP}}
@ IN A {{.IP}}
www IN A {{.IP}}
`))

// RenderStanza renders the named.conf zone declaration
func (d *Data) RenderStanza() (string, error) {
	var buf bytes.Buffer
	if err := stanzaTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to render zone stanza: %w", err)
	}
	return buf.String(), nil
}

// RenderFile renders the zone file body
func (d *Data) RenderFile() (string, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to render zone file: %w", err)
	}
	return buf.String(), nil
}
