// Package dnscheck performs direct DNS queries against a freshly
// provisioned server to confirm it answers authoritatively.
package dnscheck

import (
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

// DefaultTimeout bounds a single query round trip.
const DefaultTimeout = 5 * time.Second

// Answer is the outcome of a successful lookup.
type Answer struct {
	Name string
	IPs  []string
	TTL  uint32
}

// QueryA asks the server at addr (host or host:port, port 53 assumed)
// for the A records of name and returns the answer. An empty answer
// section is an error: the server responded but is not authoritative
// for the zone yet.
func QueryA(addr, name string, timeout time.Duration) (*Answer, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "53")
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)

	client := &dns.Client{Timeout: timeout}
	resp, _, err := client.Exchange(msg, addr)
	if err != nil {
		return nil, fmt.Errorf("query %s against %s failed: %w", name, addr, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("query %s against %s returned %s", name, addr, dns.RcodeToString[resp.Rcode])
	}

	answer := &Answer{Name: name}
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			answer.IPs = append(answer.IPs, a.A.String())
			answer.TTL = a.Hdr.Ttl
		}
	}
	if len(answer.IPs) == 0 {
		return nil, fmt.Errorf("query %s against %s returned no A records", name, addr)
	}
	return answer, nil
}

// Verify checks that the server at addr resolves name to wantIP.
func Verify(addr, name, wantIP string, timeout time.Duration) error {
	answer, err := QueryA(addr, name, timeout)
	if err != nil {
		return err
	}
	for _, ip := range answer.IPs {
		if ip == wantIP {
			return nil
		}
	}
	return fmt.Errorf("server %s resolves %s to %v, expected %s", addr, name, answer.IPs, wantIP)
}
