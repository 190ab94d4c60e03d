package app

import (
	"time"

	"wingetup/internal/adapters"
	"wingetup/internal/ports"
)

// InstallerURL is where winget itself is obtained when it is missing
// from the host.
const InstallerURL = "https://aka.ms/getwinget"

type Service struct {
	PM        ports.PackageManagerPort
	Privilege ports.PrivilegePort
	Confirm   ports.ConfirmerPort
	Launcher  ports.LauncherPort
	Catalog   ports.CatalogPort
	HostInfo  ports.HostInfoPort
	Clock     func() time.Time
	Sleep     func(time.Duration)
}

func NewService() Service {
	return Service{
		PM:        adapters.NewWingetAdapter(),
		Privilege: adapters.NewPrivilegeAdapter(),
		Confirm:   adapters.NewStdinConfirmer(),
		Launcher:  adapters.NewBrowserLauncher(),
		Catalog:   adapters.NewCatalogFileAdapter(),
		HostInfo:  adapters.NewHostInfoAdapter(),
		Clock:     time.Now,
		Sleep:     time.Sleep,
	}
}
