package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"wingetup/internal/ports"
	"wingetup/internal/types"
)

// Processor runs the per-application state machine:
//
//	not installed            -> install          -> Success | Failed
//	installed, skip-updates  -> Skipped (no update check)
//	installed, update found  -> upgrade          -> Updated | Failed
//	installed, no update     -> AlreadyLatest
//
// Check queries are fail-open: an error from the install-state or
// upgrade-candidate lookup is logged and treated as "no", so a flaky
// query degrades to an extra install attempt rather than a crash.
type Processor struct {
	PM          ports.PackageManagerPort
	SkipUpdates bool
}

func NewProcessor(pm ports.PackageManagerPort, skipUpdates bool) Processor {
	return Processor{PM: pm, SkipUpdates: skipUpdates}
}

func (p Processor) Process(ctx context.Context, app types.Application) types.Outcome {
	installed, err := p.PM.IsInstalled(ctx, app.ID)
	if err != nil {
		log.Warn().Err(err).Str("id", app.ID).
			Msg("install-state check failed, treating as not installed")
		installed = false
	}

	if !installed {
		if err := p.PM.Install(ctx, app.ID); err != nil {
			log.Warn().Err(err).Str("id", app.ID).Msg("install failed")
			return types.OutcomeFailed
		}
		log.Info().Str("id", app.ID).Msg("installed")
		return types.OutcomeSuccess
	}

	if p.SkipUpdates {
		return types.OutcomeSkipped
	}

	candidate, err := p.PM.UpgradeCandidate(ctx, app.ID)
	if err != nil {
		log.Warn().Err(err).Str("id", app.ID).
			Msg("update check failed, treating as up to date")
		return types.OutcomeAlreadyLatest
	}
	if candidate == nil {
		return types.OutcomeAlreadyLatest
	}

	if !UpgradeIsNewer(*candidate) {
		log.Warn().Str("id", app.ID).
			Str("installed", candidate.Installed).
			Str("available", candidate.Available).
			Msg("upgrade candidate is not newer than installed version")
	}
	if err := p.PM.Upgrade(ctx, app.ID); err != nil {
		log.Warn().Err(err).Str("id", app.ID).Msg("upgrade failed")
		return types.OutcomeFailed
	}
	log.Info().Str("id", app.ID).
		Str("installed", candidate.Installed).
		Str("available", candidate.Available).
		Msg("updated")
	return types.OutcomeUpdated
}
