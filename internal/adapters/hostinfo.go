package adapters

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"wingetup/internal/ports"
)

type HostInfoAdapter struct{}

func NewHostInfoAdapter() HostInfoAdapter {
	return HostInfoAdapter{}
}

func (HostInfoAdapter) Collect() (ports.HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return ports.HostInfo{}, err
	}
	return ports.HostInfo{
		Hostname: info.Hostname,
		OS:       info.OS,
		Platform: fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion),
		Version:  info.KernelVersion,
		Uptime:   time.Duration(info.Uptime) * time.Second,
	}, nil
}

var _ ports.HostInfoPort = HostInfoAdapter{}
