package provision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionCommandRegistration(t *testing.T) {
	t.Run("provision command registered", func(t *testing.T) {
		assert.NotNil(t, Command)
		assert.Equal(t, "provision", Command.Name)
		assert.Equal(t, "<domain> <ip>", Command.ArgsUsage)
		assert.NotNil(t, Command.Action)
	})

	t.Run("flags registered", func(t *testing.T) {
		names := make(map[string]bool)
		for _, f := range Command.Flags {
			for _, n := range f.Names() {
				names[n] = true
			}
		}

		assert.True(t, names["host"], "host flag should be registered")
		assert.True(t, names["skip-install"], "skip-install flag should be registered")
		assert.True(t, names["skip-firewall"], "skip-firewall flag should be registered")
		assert.True(t, names["skip-verify"], "skip-verify flag should be registered")
		assert.True(t, names["wait"], "wait flag should be registered")
	})
}

func TestHelpExitsCleanWithoutRunningAction(t *testing.T) {
	// The args are deliberately invalid: if the help flag did not
	// short-circuit, the action would reject them and return an error.
	t.Run("--help", func(t *testing.T) {
		err := Command.Run(context.Background(), []string{"provision", "--help", "not_a_domain", "192.0.2"})
		require.NoError(t, err)
	})

	t.Run("-h", func(t *testing.T) {
		err := Command.Run(context.Background(), []string{"provision", "-h", "not_a_domain", "192.0.2"})
		require.NoError(t, err)
	})
}
