// Package validate checks user-supplied domain and IP strings before any
// host mutation happens.
package validate

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidInput is the terminal error class for rejected user input
var ErrInvalidInput = errors.New("invalid input")

var (
	domainPattern = regexp.MustCompile(`^[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Dotted quad of 1-3 digit groups. Octets above 255 are accepted;
	// the syntax check is intentionally lax and BIND's own validation
	// catches the rest.
	ipPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
)

// Domain validates a domain name against the accepted pattern
func Domain(s string) error {
	if !domainPattern.MatchString(s) {
		return fmt.Errorf("%w: invalid domain %q", ErrInvalidInput, s)
	}
	return nil
}

// IP validates an IPv4 address string against the dotted-quad pattern
func IP(s string) error {
	if !ipPattern.MatchString(s) {
		return fmt.Errorf("%w: invalid IP %q", ErrInvalidInput, s)
	}
	return nil
}
