package middleware

import (
	"bytes"
	"net"
	"net/http"
	"strings"
)

const unknownIP = "0.0.0.0"

// An ipRange is a range of IP addresses.
type ipRange struct {
	start net.IP
	end   net.IP
}

// contains checks whether the address is within the range.
func (r ipRange) contains(ip net.IP) bool {
	return bytes.Compare(ip, r.start) >= 0 && bytes.Compare(ip, r.end) <= 0
}

// IANA defined IPv4 non-public ranges
var privateRanges = []ipRange{
	{start: net.ParseIP("10.0.0.0"), end: net.ParseIP("10.255.255.255")},
	{start: net.ParseIP("100.64.0.0"), end: net.ParseIP("100.127.255.255")},
	{start: net.ParseIP("172.16.0.0"), end: net.ParseIP("172.31.255.255")},
	{start: net.ParseIP("192.0.0.0"), end: net.ParseIP("192.0.0.255")},
	{start: net.ParseIP("192.168.0.0"), end: net.ParseIP("192.168.255.255")},
	{start: net.ParseIP("198.18.0.0"), end: net.ParseIP("198.19.255.255")},
}

// GetIPAddress parses the "X-Forwarded-For" and "X-Real-Ip" headers for the client's IP address,
// returning "0.0.0.0" when neither holds a public address.
//
// Only transport headers are read.
// A *req.Request is not suitable since it mixes query params in with headers.
//
// Addresses are read right to left since the rightmost public address
// is the one set by the proxy closest to us.
func GetIPAddress(h http.Header) string {
	for _, name := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(h.Get(name), ",")
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			parsed := net.ParseIP(ip)
			if !parsed.IsGlobalUnicast() || isPrivateSubnet(parsed) {
				continue
			}

			return ip
		}
	}

	return unknownIP
}

// isPrivateSubnet checks whether the IP address is in a private subnet.
//
// Only IPv4 subnets are supported.
func isPrivateSubnet(ip net.IP) bool {
	if ip.To4() == nil {
		return false
	}

	for _, r := range privateRanges {
		if r.contains(ip) {
			return true
		}
	}

	return false
}
