// Package env provides facts about the machine the tools run on.
package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

const appID = "ledfield"

// MachineID retrieves an ID identifying the machine. The raw machine ID is
// hashed with the application name so it is safe to publish. The hostname
// is used when no machine ID is available.
func MachineID() string {
	id, err := machineid.ProtectedID(appID)
	if err == nil {
		return id[:12]
	}
	glog.V(1).Infof("machine id unavailable: %v", err)
	if host, herr := os.Hostname(); herr == nil && host != "" {
		return host
	}
	return "unknown"
}
