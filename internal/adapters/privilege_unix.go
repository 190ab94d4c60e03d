//go:build !windows

package adapters

import (
	"os"

	"wingetup/internal/ports"
)

type PrivilegeAdapter struct{}

func NewPrivilegeAdapter() PrivilegeAdapter {
	return PrivilegeAdapter{}
}

func (PrivilegeAdapter) Elevated() (bool, error) {
	return os.Geteuid() == 0, nil
}

var _ ports.PrivilegePort = PrivilegeAdapter{}
