package noproxy

import (
	"strconv"
	"strings"
)

// matchesEntry reports whether hostname is covered by a single bypass
// entry. Entries containing "/" are CIDR ranges; anything else is tested
// as an exact host and then as a domain suffix, which makes
// "example.com" and ".example.com" equivalent rules.
func matchesEntry(hostname, entry string) bool {
	if strings.Contains(entry, "/") {
		return matchesCIDR(hostname, entry)
	}

	// FQDN trailing dots are insignificant for matching.
	hostname = strings.TrimSuffix(hostname, ".")
	entry = strings.TrimSuffix(entry, ".")

	bare := strings.TrimPrefix(entry, ".")
	if hostname == bare {
		return true
	}

	// Suffix matching injects a leading dot so that a match can only
	// occur on a label boundary: "cluster.local" must not match
	// "notcluster.localfoo.com".
	return strings.HasSuffix(hostname, "."+bare)
}

// matchesCIDR reports whether hostname, interpreted as an IPv4 literal,
// falls inside the cidr range. A malformed range or a hostname that is
// not a dotted-quad IPv4 literal never matches; invalid entries must not
// abort the evaluation. IPv6 is not supported in this branch.
func matchesCIDR(hostname, cidr string) bool {
	network, prefixStr, ok := strings.Cut(cidr, "/")
	if !ok {
		return false
	}
	prefix, err := strconv.Atoi(prefixStr)
	if err != nil || prefix < 0 || prefix > 32 {
		return false
	}
	networkAddr, ok := parseIPv4(network)
	if !ok {
		return false
	}
	hostAddr, ok := parseIPv4(hostname)
	if !ok {
		return false
	}

	// A /0 mask is empty and matches every address.
	var mask uint32
	if prefix > 0 {
		mask = ^uint32(0) << (32 - prefix)
	}
	return networkAddr&mask == hostAddr&mask
}

// parseIPv4 decodes a dotted-quad IPv4 literal into its 32-bit value.
// It requires exactly four decimal octets in 0..255, so IPv6 literals
// and hostnames always fail.
func parseIPv4(s string) (uint32, bool) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return 0, false
	}
	var addr uint32
	for _, octet := range octets {
		n, err := strconv.Atoi(octet)
		if err != nil || n < 0 || n > 255 {
			return 0, false
		}
		addr = addr<<8 | uint32(n)
	}
	return addr, true
}
