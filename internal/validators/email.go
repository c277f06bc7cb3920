package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of an address
// resolves at all: MX records first, then any A/AAAA record. A
// well-formed address on a dead domain fails here.
func IsEmailDomainValid(email string) bool {
	host := email[strings.LastIndexByte(email, '@')+1:]
	if host == "" || host == email {
		return false
	}

	if recs, err := net.LookupMX(host); err == nil && len(recs) > 0 {
		return true
	}

	addrs, err := net.LookupIP(host)
	return err == nil && len(addrs) > 0
}
