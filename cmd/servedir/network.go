package main

import (
	"errors"
	"net"
)

// localIPv4 returns a private (RFC 1918) IPv4 address of this machine,
// preferring real interfaces over link-local ones.
func localIPv4() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}

	var fallback string
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip4 := ipNet.IP.To4()
		if ip4 == nil || ip4.IsLoopback() {
			continue
		}
		if isRFC1918(ip4) {
			return ip4.String(), nil
		}
		if fallback == "" && !ip4.IsLinkLocalUnicast() {
			fallback = ip4.String()
		}
	}

	if fallback != "" {
		return fallback, nil
	}
	return "", errors.New("no usable IPv4 address found")
}

func isRFC1918(ip4 net.IP) bool {
	switch {
	case ip4[0] == 10:
		return true
	case ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31:
		return true
	case ip4[0] == 192 && ip4[1] == 168:
		return true
	}
	return false
}
