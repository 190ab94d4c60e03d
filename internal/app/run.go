package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"wingetup/internal/core"
	"wingetup/internal/types"
)

// Run executes the full pipeline: privilege check, toolchain ensure,
// table resolution, then the sequential per-application loop with a
// pacing delay between entries (not after the last). Per-item failures
// land in the result as Failed; only precondition failures abort.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	if req.Pacing < 0 {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pacing interval must not be negative")
	}

	elevated, err := s.Privilege.Elevated()
	if err != nil {
		log.Warn().Err(err).Msg("could not determine elevation state")
		elevated = false
	}
	if !elevated {
		log.Warn().Msg("not running with administrator rights, installs may prompt or fail")
		if !s.Confirm.Confirm("Continue without administrator rights") {
			return RunResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("run cancelled, administrator rights declined")
		}
	}

	if !req.SkipDependencies {
		if err := s.EnsureToolchain(ctx); err != nil {
			return RunResult{}, err
		}
	}

	apps, err := s.resolveTable(req.Apps, req.CatalogPath)
	if err != nil {
		return RunResult{}, err
	}
	// resolveTable and the catalog loader reject blank ids, so this is
	// an internal invariant by the time the loop starts.
	for _, app := range apps {
		assert.NotEmpty(ctx, app.ID, "resolved table contains a blank application id")
	}

	start := s.Clock()
	processor := core.NewProcessor(s.PM, req.SkipUpdates)
	results := make([]types.AppResult, 0, len(apps))
	for i, app := range apps {
		if i > 0 && req.Pacing > 0 {
			s.Sleep(req.Pacing)
		}
		log.Info().Str("name", app.Name).Str("id", app.ID).Msg("processing application")
		outcome := processor.Process(ctx, app)
		results = append(results, types.AppResult{App: app, Outcome: outcome})
	}

	return RunResult{
		Results: results,
		Report:  core.BuildReport(results),
		Elapsed: s.Clock().Sub(start),
	}, nil
}

// Table resolves the effective application table without touching the
// host system.
func (s Service) Table(req TableRequest) (TableResult, error) {
	apps, err := s.resolveTable(req.Apps, req.CatalogPath)
	if err != nil {
		return TableResult{}, err
	}
	return TableResult{Applications: apps}, nil
}

func (s Service) resolveTable(ids []string, catalogPath string) ([]types.Application, error) {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("application id must not be blank")
		}
	}
	catalog := core.DefaultCatalog()
	if strings.TrimSpace(catalogPath) != "" {
		loaded, err := s.Catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}
	return core.ResolveCatalog(catalog, ids), nil
}
