package ports

import (
	"context"

	"wingetup/internal/types"
)

// PackageManagerPort drives the external package manager CLI. Every call
// blocks on a child process and honors context cancellation.
//
// IsInstalled and UpgradeCandidate return their query errors unmapped;
// the caller decides whether a failed query means "no" (the processor's
// fail-open policy) or should surface.
type PackageManagerPort interface {
	Version(ctx context.Context) (string, error)
	UpdateSources(ctx context.Context) error
	IsInstalled(ctx context.Context, id string) (bool, error)
	UpgradeCandidate(ctx context.Context, id string) (*types.UpgradeCandidate, error)
	Install(ctx context.Context, id string) error
	Upgrade(ctx context.Context, id string) error
}
