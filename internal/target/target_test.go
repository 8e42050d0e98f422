package target

import (
	"fmt"
	"strings"
	"testing"

	"github.com/catalystcommunity/bindforge/internal/bind"
	"github.com/catalystcommunity/bindforge/internal/config"
	"github.com/catalystcommunity/bindforge/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toolRunner struct {
	tools map[string]bool
}

func (t *toolRunner) Exec(command string) (*executor.Result, error) {
	if strings.HasPrefix(command, "command -v ") {
		tool := strings.TrimPrefix(command, "command -v ")
		if t.tools[tool] {
			return &executor.Result{Stdout: "/usr/bin/" + tool, ExitCode: 0}, nil
		}
		return &executor.Result{ExitCode: 1}, nil
	}
	return nil, fmt.Errorf("unexpected command: %s", command)
}

func TestResolveLocal(t *testing.T) {
	target, err := Resolve(config.Default(), "")
	require.NoError(t, err)
	defer target.Close()

	assert.IsType(t, &executor.LocalRunner{}, target.Runner)
	assert.Equal(t, "local machine", target.Describe())
}

func TestResolveUnknownHost(t *testing.T) {
	cfg := config.Default()
	cfg.Hosts = []config.HostConfig{
		{Name: "ns1", Address: "192.0.2.1", User: "admin", KeyPath: "/tmp/key"},
	}

	_, err := Resolve(cfg, "ns2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveMissingKey(t *testing.T) {
	cfg := config.Default()
	cfg.Hosts = []config.HostConfig{
		{Name: "ns1", Address: "192.0.2.1", User: "admin", KeyPath: "/nonexistent/key"},
	}

	_, err := Resolve(cfg, "ns1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SSH key")
}

func TestResolveLayoutNoOverrides(t *testing.T) {
	layout, err := ResolveLayout(&toolRunner{}, config.ServerConfig{})
	require.NoError(t, err)
	assert.Nil(t, layout)
}

func TestResolveLayoutFamily(t *testing.T) {
	layout, err := ResolveLayout(&toolRunner{}, config.ServerConfig{Family: "rhel"})
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Equal(t, "rhel", layout.Family)
	assert.Equal(t, "/etc/named.conf", layout.ConfFile)
}

func TestResolveLayoutFieldOverrides(t *testing.T) {
	layout, err := ResolveLayout(&toolRunner{}, config.ServerConfig{
		Family:   "debian",
		ConfFile: "/etc/bind/custom.conf",
		Service:  "bind9",
	})
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Equal(t, "/etc/bind/custom.conf", layout.ConfFile)
	assert.Equal(t, "bind9", layout.Service)
	assert.Equal(t, bind.DebianLayout().ZoneDir, layout.ZoneDir)
}

func TestResolveLayoutPartialOverrideDetects(t *testing.T) {
	r := &toolRunner{tools: map[string]bool{"apt-get": true}}

	layout, err := ResolveLayout(r, config.ServerConfig{ZoneDir: "/srv/zones"})
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Equal(t, "debian", layout.Family)
	assert.Equal(t, "/srv/zones", layout.ZoneDir)
}
