package server

import (
	"fmt"
	"net"
)

// findAvailablePort probes TCP ports from start upward and returns the first
// one that can be bound. If nothing is free it falls back to start.
func findAvailablePort(address string, start int) int {
	for port := start; port < 65535; port++ {
		l, err := net.Listen("tcp", fmt.Sprintf("%s:%d", address, port))
		if err != nil {
			continue
		}

		l.Close()

		return port
	}

	return start
}
