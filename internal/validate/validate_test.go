package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomain(t *testing.T) {
	valid := []string{
		"example.com",
		"sub.example.com",
		"my-site.co.uk",
		"a1.io",
	}
	for _, d := range valid {
		t.Run(d, func(t *testing.T) {
			assert.NoError(t, Domain(d))
		})
	}

	invalid := []string{
		"",
		"example",
		"example.c",
		"example.123",
		"exa mple.com",
		"example.com/path",
		"ex_ample.com",
		"example.",
	}
	for _, d := range invalid {
		t.Run("rejects "+d, func(t *testing.T) {
			err := Domain(d)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestIP(t *testing.T) {
	valid := []string{
		"1.2.3.4",
		"10.0.0.1",
		"192.168.100.200",
		// Octets above 255 pass the syntax check on purpose
		"999.999.999.999",
	}
	for _, ip := range valid {
		t.Run(ip, func(t *testing.T) {
			assert.NoError(t, IP(ip))
		})
	}

	invalid := []string{
		"",
		"1.2.3",
		"1.2.3.4.5",
		"1.2.3.4444",
		"a.b.c.d",
		"1.2.3.4 ",
		"1,2,3,4",
		"::1",
	}
	for _, ip := range invalid {
		t.Run("rejects "+ip, func(t *testing.T) {
			err := IP(ip)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}
