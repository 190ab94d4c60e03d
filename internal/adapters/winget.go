package adapters

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"wingetup/internal/ports"
	"wingetup/internal/shared"
	"wingetup/internal/types"
)

// query flags shared by the read-only subcommands.
var wingetQueryFlags = []string{"--disable-interactivity", "--accept-source-agreements"}

// flags that make install/upgrade run unattended.
var wingetMutateFlags = []string{
	"--exact",
	"--silent",
	"--accept-package-agreements",
	"--accept-source-agreements",
	"--disable-interactivity",
}

type WingetAdapter struct {
	Binary string
}

func NewWingetAdapter() WingetAdapter {
	return WingetAdapter{Binary: "winget"}
}

func (a WingetAdapter) Version(ctx context.Context) (string, error) {
	output, err := a.runOutput(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

func (a WingetAdapter) UpdateSources(ctx context.Context) error {
	return a.run(ctx, "source", "update")
}

// IsInstalled reports whether the package id appears in winget's list of
// installed packages. A non-zero exit is winget's "not found" answer and
// maps to false without error; only spawn or context failures surface.
func (a WingetAdapter) IsInstalled(ctx context.Context, id string) (bool, error) {
	args := append([]string{"list", "--id", id, "--exact"}, wingetQueryFlags...)
	output, err := a.runOutput(ctx, args...)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, err
	}
	return shared.ContainsToken(output, id), nil
}

// UpgradeCandidate scans the upgrade listing (including packages with an
// unknown installed version) for the package id. Nil means no update is
// available. Non-zero exit means the listing is empty, not a failure.
func (a WingetAdapter) UpgradeCandidate(ctx context.Context, id string) (*types.UpgradeCandidate, error) {
	args := append([]string{"upgrade", "--include-unknown"}, wingetQueryFlags...)
	output, err := a.runOutput(ctx, args...)
	if err != nil {
		if isExitError(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseUpgradeLine(output, id), nil
}

func (a WingetAdapter) Install(ctx context.Context, id string) error {
	args := append([]string{"install", "--id", id}, wingetMutateFlags...)
	return a.run(ctx, args...)
}

func (a WingetAdapter) Upgrade(ctx context.Context, id string) error {
	args := append([]string{"upgrade", "--id", id}, wingetMutateFlags...)
	return a.run(ctx, args...)
}

func (a WingetAdapter) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("winget command failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

func (a WingetAdapter) runOutput(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// parseUpgradeLine extracts the candidate for id from winget's columnar
// upgrade output (Name Id Version Available Source). The name column may
// contain spaces, so fields are located relative to the id token. The
// literal "Unknown" installed version is normalized to empty.
func parseUpgradeLine(output string, id string) *types.UpgradeCandidate {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		for i, field := range fields {
			if !strings.EqualFold(field, id) {
				continue
			}
			candidate := &types.UpgradeCandidate{ID: id}
			if i+1 < len(fields) {
				candidate.Installed = fields[i+1]
			}
			if i+2 < len(fields) {
				candidate.Available = fields[i+2]
			}
			if strings.EqualFold(candidate.Installed, "Unknown") {
				candidate.Installed = ""
			}
			return candidate
		}
	}
	return nil
}

var _ ports.PackageManagerPort = WingetAdapter{}
