package utils

import (
	"net"
)

// LocalIP returns the address of the primary network interface, so that a
// network-accessible URL can be shown on startup. Dialing a public address
// selects the right interface without sending any packets (UDP).
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}

	return addr.IP.String()
}
