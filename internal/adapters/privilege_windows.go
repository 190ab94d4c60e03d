//go:build windows

package adapters

import (
	"golang.org/x/sys/windows"

	"wingetup/internal/ports"
)

type PrivilegeAdapter struct{}

func NewPrivilegeAdapter() PrivilegeAdapter {
	return PrivilegeAdapter{}
}

// Elevated reports whether the process token belongs to the builtin
// Administrators group or carries an elevated token.
func (PrivilegeAdapter) Elevated() (bool, error) {
	sid, err := windows.CreateWellKnownSid(windows.WinBuiltinAdministratorsSid)
	if err != nil {
		return false, err
	}
	token := windows.GetCurrentProcessToken()
	member, err := token.IsMember(sid)
	if err != nil {
		return false, err
	}
	return member || token.IsElevated(), nil
}

var _ ports.PrivilegePort = PrivilegeAdapter{}
