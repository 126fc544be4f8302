package cmd

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// isAddrInUse reports whether a listen error means the port is taken.
func isAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	return strings.Contains(err.Error(), "address already in use")
}

// diagnoseAddrInUse returns actionable guidance when the port is taken.
// It distinguishes a distance server already answering from an unknown holder.
func diagnoseAddrInUse(port int) string {
	if newClient(localURL(port)).Ping(bgContext()) {
		return fmt.Sprintf("a distance server is already running on port %d\n"+
			"  → check it:        distance health --url %s\n"+
			"  → or pick a port:  PORT=%d distance", port, localURL(port), port+1)
	}
	return fmt.Sprintf("port %d is in use by another process\n"+
		"  → find it:         lsof -i :%d\n"+
		"  → or pick a port:  distance serve --port %d", port, port, port+1)
}
