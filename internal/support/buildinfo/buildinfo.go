// Package buildinfo carries version metadata stamped at link time.
package buildinfo

// Version is set via:
//
//	-ldflags "-X gridagent/internal/support/buildinfo.Version=v1.2.3"
var Version = "dev"
