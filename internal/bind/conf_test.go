package bind

import (
	"fmt"
	"strings"
	"testing"

	"github.com/catalystcommunity/bindforge/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConf = `zone "other.org" {
    type master;
    file "/etc/bind/zones/db.other.org";
    allow-transfer { none; };
};

zone "example.com" {
    type master;
    file "/etc/bind/zones/db.example.com";
    allow-transfer { none; };
};
`

// hostRunner simulates a host filesystem: cat reads and tee heredocs
// write an in-memory file map, everything else is recorded and succeeds.
type hostRunner struct {
	files    map[string]string
	commands []string
}

func newHostRunner() *hostRunner {
	return &hostRunner{files: make(map[string]string)}
}

func (h *hostRunner) Exec(cmd string) (*executor.Result, error) {
	h.commands = append(h.commands, cmd)

	if strings.HasPrefix(cmd, "sudo cat ") {
		path := strings.Fields(cmd)[2]
		return &executor.Result{Stdout: h.files[path]}, nil
	}

	if strings.HasPrefix(cmd, "sudo tee ") {
		path := strings.Fields(cmd)[2]
		// Content sits between the heredoc header line and the marker
		lines := strings.Split(cmd, "\n")
		content := strings.Join(lines[1:len(lines)-1], "\n")
		h.files[path] = content + "\n"
		return &executor.Result{}, nil
	}

	return &executor.Result{}, nil
}

func TestStripZoneStanza(t *testing.T) {
	t.Run("removes only the named zone", func(t *testing.T) {
		result := StripZoneStanza(sampleConf, "example.com")

		assert.NotContains(t, result, `zone "example.com"`)
		assert.NotContains(t, result, "db.example.com")
		assert.Contains(t, result, `zone "other.org"`)
		assert.Contains(t, result, "db.other.org")
	})

	t.Run("missing stanza is a no-op", func(t *testing.T) {
		result := StripZoneStanza(sampleConf, "absent.net")
		assert.Equal(t, sampleConf, result)
	})

	t.Run("does not match domain prefixes", func(t *testing.T) {
		result := StripZoneStanza(sampleConf, "example.co")
		assert.Contains(t, result, `zone "example.com"`)
	})

	t.Run("handles IN class in declaration", func(t *testing.T) {
		conf := "zone \"example.com\" IN {\n    type master;\n};\n"
		result := StripZoneStanza(conf, "example.com")
		assert.NotContains(t, result, "example.com")
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", StripZoneStanza("", "example.com"))
	})
}

func TestHasZoneStanza(t *testing.T) {
	assert.True(t, HasZoneStanza(sampleConf, "example.com"))
	assert.True(t, HasZoneStanza(sampleConf, "other.org"))
	assert.False(t, HasZoneStanza(sampleConf, "absent.net"))
	assert.False(t, HasZoneStanza(sampleConf, "example.co"))
}

func TestListZones(t *testing.T) {
	assert.Equal(t, []string{"other.org", "example.com"}, ListZones(sampleConf))
	assert.Empty(t, ListZones(""))
}

func TestUpsertZoneStanzaIdempotent(t *testing.T) {
	layout := DebianLayout()
	runner := newHostRunner()

	stanza := `zone "example.com" {
    type master;
    file "/etc/bind/zones/db.example.com";
    allow-transfer { none; };
};`

	// Provision the same domain twice
	require.NoError(t, UpsertZoneStanza(runner, layout, "example.com", stanza))
	require.NoError(t, UpsertZoneStanza(runner, layout, "example.com", stanza))

	conf := runner.files[layout.ConfFile]
	assert.Equal(t, 1, strings.Count(conf, `zone "example.com"`),
		"re-running must leave exactly one stanza")
}

func TestUpsertZoneStanzaPreservesOtherZones(t *testing.T) {
	layout := DebianLayout()
	runner := newHostRunner()
	runner.files[layout.ConfFile] = sampleConf

	stanza := `zone "example.com" {
    type master;
    file "/var/named/db.example.com";
    allow-transfer { none; };
};`

	require.NoError(t, UpsertZoneStanza(runner, layout, "example.com", stanza))

	conf := runner.files[layout.ConfFile]
	assert.Contains(t, conf, `zone "other.org"`)
	assert.Contains(t, conf, "/var/named/db.example.com")
	assert.Equal(t, 1, strings.Count(conf, `zone "example.com"`))
}

func TestDropZoneStanza(t *testing.T) {
	layout := DebianLayout()
	runner := newHostRunner()
	runner.files[layout.ConfFile] = sampleConf

	require.NoError(t, DropZoneStanza(runner, layout, "example.com"))
	assert.NotContains(t, runner.files[layout.ConfFile], "example.com")
	assert.Contains(t, runner.files[layout.ConfFile], "other.org")

	// Dropping an absent zone issues no write
	writes := len(runner.commands)
	require.NoError(t, DropZoneStanza(runner, layout, "absent.net"))
	assert.Equal(t, writes+1, len(runner.commands), "only the read should run")
}

func TestWriteRemoteFileSetsPermissions(t *testing.T) {
	runner := newHostRunner()
	require.NoError(t, writeRemoteFile(runner, "/etc/bind/zones/db.example.com", "content\n"))

	var sawChmod bool
	for _, cmd := range runner.commands {
		if cmd == "sudo chmod 644 /etc/bind/zones/db.example.com" {
			sawChmod = true
		}
	}
	assert.True(t, sawChmod)
}

func TestWriteZoneFile(t *testing.T) {
	layout := DebianLayout()
	runner := newHostRunner()

	require.NoError(t, WriteZoneFile(runner, layout, "/etc/bind/zones/db.example.com", "@ IN A 1.2.3.4\n"))

	assert.Contains(t, runner.files["/etc/bind/zones/db.example.com"], "@ IN A 1.2.3.4")

	joined := strings.Join(runner.commands, "\n")
	assert.Contains(t, joined, "sudo mkdir -p /etc/bind/zones")
	assert.Contains(t, joined, fmt.Sprintf("sudo chown %s:%s /etc/bind/zones/db.example.com", layout.User, layout.Group))
}
