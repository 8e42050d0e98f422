package ssh

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/catalystcommunity/bindforge/internal/executor"
	"golang.org/x/crypto/ssh"
)

// Exec executes a command on the remote host and returns the result.
// Connection satisfies executor.Runner so provisioning code works the
// same against local and remote hosts.
func (c *Connection) Exec(command string) (*executor.Result, error) {
	return c.ExecWithTimeout(command, executor.DefaultTimeout)
}

// ExecWithTimeout executes a command with a specified timeout
func (c *Connection) ExecWithTimeout(command string, timeout time.Duration) (*executor.Result, error) {
	if c.client == nil {
		return nil, fmt.Errorf("connection is not established")
	}

	if command == "" {
		return nil, fmt.Errorf("command cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	session, err := c.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	done := make(chan error, 1)
	go func() {
		done <- session.Run(command)
	}()

	select {
	case <-ctx.Done():
		// Best effort: signal the remote process before giving up
		session.Signal(ssh.SIGTERM)
		session.Close()
		return nil, fmt.Errorf("command timed out after %v", timeout)
	case err := <-done:
		result := &executor.Result{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: 0,
		}

		if err != nil {
			if exitErr, ok := err.(*ssh.ExitError); ok {
				result.ExitCode = exitErr.ExitStatus()
			} else {
				return nil, fmt.Errorf("failed to execute command: %w", err)
			}
		}

		return result, nil
	}
}
