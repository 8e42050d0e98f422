package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCommandRegistration(t *testing.T) {
	assert.NotNil(t, Command)
	assert.Equal(t, "status", Command.Name)
	assert.NotNil(t, Command.Action)

	var hostFlag bool
	for _, f := range Command.Flags {
		for _, n := range f.Names() {
			if n == "host" {
				hostFlag = true
			}
		}
	}
	assert.True(t, hostFlag, "host flag should be registered")
}
