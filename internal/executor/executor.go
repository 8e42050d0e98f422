package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

// Result contains the result of a command execution
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes shell commands on a host, either locally or over SSH.
// Implementations return a Result for commands that ran (even with a
// non-zero exit code) and an error only when the command could not run.
type Runner interface {
	Exec(command string) (*Result, error)
}

// Run executes a command and treats a non-zero exit code as an error,
// returning stdout on success. This is the convenience form most callers
// want when they don't need to inspect the exit code themselves.
func Run(r Runner, command string) (string, error) {
	result, err := r.Exec(command)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return result.Stdout, fmt.Errorf("command failed with exit code %d: %s", result.ExitCode, result.Stderr)
	}
	return result.Stdout, nil
}

// LocalRunner executes commands on the local machine through the shell.
type LocalRunner struct {
	// Timeout applies per command; zero means DefaultTimeout
	Timeout time.Duration
}

// DefaultTimeout matches the SSH executor's per-command timeout
const DefaultTimeout = 60 * time.Second

// NewLocalRunner creates a LocalRunner with the default timeout
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{Timeout: DefaultTimeout}
}

// Exec runs a command locally via sh -c and returns the result
func (l *LocalRunner) Exec(command string) (*Result, error) {
	if command == "" {
		return nil, fmt.Errorf("command cannot be empty")
	}

	timeout := l.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("command timed out after %v", timeout)
	}

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			return nil, fmt.Errorf("failed to execute command: %w", err)
		}
	}

	return result, nil
}
