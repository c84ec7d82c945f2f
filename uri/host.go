package uri

import (
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

// HostKind classifies the host of a URI.
type HostKind uint8

const (
	HostNone   HostKind = iota // no host
	HostIPv4                   // dotted IPv4 address
	HostDomain                 // syntactically valid domain name
	HostOther                  // anything else accepted by the grammar
)

func (k HostKind) String() string {
	switch k {
	case HostNone:
		return "none"
	case HostIPv4:
		return "ipv4"
	case HostDomain:
		return "domain"
	case HostOther:
		return "other"
	default:
		return "unknown"
	}
}

// HostKind returns the kind of the URI host.
//
// The grammar admits '?' in hosts, such hosts are reported as [HostOther].
func (u URI) HostKind() HostKind {
	if u.host == "" {
		return HostNone
	}
	if addr, err := netip.ParseAddr(u.host); err == nil && addr.Is4() {
		return HostIPv4
	}
	if strings.ContainsRune(u.host, '?') {
		return HostOther
	}
	if _, ok := dns.IsDomainName(u.host); ok {
		return HostDomain
	}
	return HostOther
}
