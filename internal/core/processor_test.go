package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wingetup/internal/types"
)

type fakePM struct {
	installed    map[string]bool
	installedErr error
	candidates   map[string]*types.UpgradeCandidate
	candidateErr error
	installErr   error
	upgradeErr   error

	installedCalls int
	candidateCalls int
	installCalls   int
	upgradeCalls   int
}

func (f *fakePM) Version(context.Context) (string, error) { return "v1.0", nil }
func (f *fakePM) UpdateSources(context.Context) error     { return nil }

func (f *fakePM) IsInstalled(_ context.Context, id string) (bool, error) {
	f.installedCalls++
	if f.installedErr != nil {
		return false, f.installedErr
	}
	return f.installed[id], nil
}

func (f *fakePM) UpgradeCandidate(_ context.Context, id string) (*types.UpgradeCandidate, error) {
	f.candidateCalls++
	if f.candidateErr != nil {
		return nil, f.candidateErr
	}
	return f.candidates[id], nil
}

func (f *fakePM) Install(_ context.Context, id string) error {
	f.installCalls++
	return f.installErr
}

func (f *fakePM) Upgrade(_ context.Context, id string) error {
	f.upgradeCalls++
	return f.upgradeErr
}

var gitApp = types.Application{Name: "Git", ID: "Git.Git"}

func TestProcessorFreshInstall(t *testing.T) {
	pm := &fakePM{}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeSuccess, outcome)
	assert.Equal(t, 1, pm.installCalls)
	assert.Equal(t, 0, pm.upgradeCalls)
}

func TestProcessorFreshInstallFails(t *testing.T) {
	pm := &fakePM{installErr: errors.New("exit status 1")}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeFailed, outcome)
	assert.Equal(t, 1, pm.installCalls)
}

func TestProcessorSkipUpdatesShortCircuits(t *testing.T) {
	pm := &fakePM{installed: map[string]bool{"Git.Git": true}}
	processor := NewProcessor(pm, true)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeSkipped, outcome)
	assert.Equal(t, 0, pm.candidateCalls, "update check must not run when updates are skipped")
	assert.Equal(t, 0, pm.installCalls)
	assert.Equal(t, 0, pm.upgradeCalls)
}

func TestProcessorUpgrade(t *testing.T) {
	pm := &fakePM{
		installed: map[string]bool{"Git.Git": true},
		candidates: map[string]*types.UpgradeCandidate{
			"Git.Git": {ID: "Git.Git", Installed: "2.44.0", Available: "2.45.1"},
		},
	}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeUpdated, outcome)
	assert.Equal(t, 1, pm.upgradeCalls)
	assert.Equal(t, 0, pm.installCalls)
}

func TestProcessorUpgradeFails(t *testing.T) {
	pm := &fakePM{
		installed: map[string]bool{"Git.Git": true},
		candidates: map[string]*types.UpgradeCandidate{
			"Git.Git": {ID: "Git.Git", Installed: "2.44.0", Available: "2.45.1"},
		},
		upgradeErr: errors.New("exit status 1"),
	}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeFailed, outcome)
}

func TestProcessorAlreadyLatest(t *testing.T) {
	pm := &fakePM{installed: map[string]bool{"Git.Git": true}}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeAlreadyLatest, outcome)
	assert.Equal(t, 1, pm.candidateCalls)
	assert.Equal(t, 0, pm.installCalls)
	assert.Equal(t, 0, pm.upgradeCalls)
}

func TestProcessorFailOpenInstallStateCheck(t *testing.T) {
	// A failed install-state query is treated as "not installed" and an
	// install is attempted instead of aborting the entry.
	pm := &fakePM{installedErr: errors.New("query failed")}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeSuccess, outcome)
	assert.Equal(t, 1, pm.installCalls)
}

func TestProcessorFailOpenUpdateCheck(t *testing.T) {
	pm := &fakePM{
		installed:    map[string]bool{"Git.Git": true},
		candidateErr: errors.New("query failed"),
	}
	processor := NewProcessor(pm, false)

	outcome := processor.Process(context.Background(), gitApp)

	require.Equal(t, types.OutcomeAlreadyLatest, outcome)
	assert.Equal(t, 0, pm.upgradeCalls)
}
