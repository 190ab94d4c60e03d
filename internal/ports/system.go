package ports

import "time"

// PrivilegePort reports whether the current process runs elevated.
type PrivilegePort interface {
	Elevated() (bool, error)
}

// ConfirmerPort asks the user a yes/no question and blocks until
// answered. Non-interactive implementations answer immediately.
type ConfirmerPort interface {
	Confirm(prompt string) bool
}

// LauncherPort opens an external resource (a URL) for the user.
type LauncherPort interface {
	OpenURL(url string) error
}

// HostInfo is a snapshot of the machine the tool runs on.
type HostInfo struct {
	Hostname string
	OS       string
	Platform string
	Version  string
	Uptime   time.Duration
}

// HostInfoPort collects host facts for diagnostics output.
type HostInfoPort interface {
	Collect() (HostInfo, error)
}
