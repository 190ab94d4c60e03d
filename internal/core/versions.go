package core

import (
	goversion "github.com/hashicorp/go-version"

	"wingetup/internal/types"
)

// UpgradeIsNewer reports whether the candidate's available version is
// strictly newer than the installed one. Unknown or unparseable versions
// answer true: the package manager already decided an upgrade exists, so
// this only flags candidates that are provably not an upgrade.
func UpgradeIsNewer(candidate types.UpgradeCandidate) bool {
	if candidate.Installed == "" || candidate.Available == "" {
		return true
	}
	installed, err := goversion.NewVersion(candidate.Installed)
	if err != nil {
		return true
	}
	available, err := goversion.NewVersion(candidate.Available)
	if err != nil {
		return true
	}
	return available.GreaterThan(installed)
}
