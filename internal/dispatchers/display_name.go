package dispatchers

import (
	"os"
	"strings"
)

const unknownHost = "unknown-host"

// hostname is swapped in tests.
var hostname = os.Hostname

// ResolveDisplayName picks the header identity: display name, then server name, then the host name.
func ResolveDisplayName(displayName, serverName string) string {
	if name := strings.TrimSpace(displayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(serverName); name != "" {
		return name
	}
	if host, err := hostname(); err == nil && host != "" {
		return host
	}
	return unknownHost
}
