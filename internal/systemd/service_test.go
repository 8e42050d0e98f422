package systemd

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/catalystcommunity/bindforge/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRunner implements executor.Runner for testing
type mockRunner struct {
	commands  []string
	responses map[string]*executor.Result
	errors    map[string]error
}

func newMockRunner() *mockRunner {
	return &mockRunner{
		responses: make(map[string]*executor.Result),
		errors:    make(map[string]error),
	}
}

func (m *mockRunner) Exec(cmd string) (*executor.Result, error) {
	m.commands = append(m.commands, cmd)

	for pattern, err := range m.errors {
		if strings.HasPrefix(cmd, pattern) {
			return nil, err
		}
	}

	if resp, ok := m.responses[cmd]; ok {
		return resp, nil
	}

	for pattern, resp := range m.responses {
		if strings.HasPrefix(cmd, pattern) {
			return resp, nil
		}
	}

	return &executor.Result{}, nil
}

func (m *mockRunner) lastCommand() string {
	if len(m.commands) == 0 {
		return ""
	}
	return m.commands[len(m.commands)-1]
}

func TestServiceLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		call    func(r executor.Runner) error
		wantCmd string
	}{
		{
			name:    "enable",
			call:    func(r executor.Runner) error { return EnableService(r, "named") },
			wantCmd: "sudo systemctl enable named.service",
		},
		{
			name:    "start",
			call:    func(r executor.Runner) error { return StartService(r, "named") },
			wantCmd: "sudo systemctl start named.service",
		},
		{
			name:    "stop",
			call:    func(r executor.Runner) error { return StopService(r, "named") },
			wantCmd: "sudo systemctl stop named.service",
		},
		{
			name:    "restart",
			call:    func(r executor.Runner) error { return RestartService(r, "named") },
			wantCmd: "sudo systemctl restart named.service",
		},
		{
			name:    "reload",
			call:    func(r executor.Runner) error { return ReloadService(r, "named") },
			wantCmd: "sudo systemctl reload named.service",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockRunner()
			require.NoError(t, tt.call(mock))
			assert.Equal(t, tt.wantCmd, mock.lastCommand())
		})
	}
}

func TestServiceSuffixNotDuplicated(t *testing.T) {
	mock := newMockRunner()
	require.NoError(t, StartService(mock, "named.service"))
	assert.Equal(t, "sudo systemctl start named.service", mock.lastCommand())
}

func TestServiceCommandFailure(t *testing.T) {
	mock := newMockRunner()
	mock.responses["sudo systemctl restart"] = &executor.Result{
		ExitCode: 1,
		Stderr:   "Job for named.service failed",
	}

	err := RestartService(mock, "named")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to restart service named.service")
	assert.Contains(t, err.Error(), "Job for named.service failed")
}

func TestGetServiceStatus(t *testing.T) {
	mock := newMockRunner()
	mock.responses["systemctl show named.service"] = &executor.Result{
		Stdout: strings.Join([]string{
			"LoadState=loaded",
			"ActiveState=active",
			"SubState=running",
			"UnitFileState=enabled",
			"MainPID=1234",
			"ActiveEnterTimestamp=Mon 2024-01-15 10:30:45 UTC",
		}, "\n"),
	}

	status, err := GetServiceStatus(mock, "named")
	require.NoError(t, err)

	assert.True(t, status.Loaded)
	assert.True(t, status.Active)
	assert.True(t, status.Running)
	assert.True(t, status.Enabled)
	assert.Equal(t, 1234, status.MainPID)
	assert.Equal(t, 2024, status.Since.Year())
}

func TestIsServiceRunning(t *testing.T) {
	mock := newMockRunner()
	mock.responses["systemctl show named.service"] = &executor.Result{
		Stdout: "SubState=dead\n",
	}

	running, err := IsServiceRunning(mock, "named")
	require.NoError(t, err)
	assert.False(t, running)
}

func TestWaitForService(t *testing.T) {
	t.Run("returns once running", func(t *testing.T) {
		mock := newMockRunner()
		mock.responses["systemctl show named.service"] = &executor.Result{
			Stdout: "SubState=running\n",
		}

		err := WaitForService(mock, "named", 5*time.Second)
		assert.NoError(t, err)
	})

	t.Run("times out when never running", func(t *testing.T) {
		mock := newMockRunner()
		mock.responses["systemctl show named.service"] = &executor.Result{
			Stdout: "SubState=failed\n",
		}

		err := WaitForService(mock, "named", 500*time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout waiting")
	})
}

func TestParseSystemdTimestamp(t *testing.T) {
	ts, err := parseSystemdTimestamp("Mon 2024-01-15 10:30:45 UTC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC), ts)

	_, err = parseSystemdTimestamp("n/a")
	assert.Error(t, err)

	_, err = parseSystemdTimestamp(fmt.Sprintf("garbage %d", 42))
	assert.Error(t, err)
}
