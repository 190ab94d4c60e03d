package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// EnsureToolchain verifies the package manager is callable. When it is
// not, the installer page is opened and the run blocks on the user
// confirming the manual install before re-checking; a second miss is
// fatal. Source metadata is then refreshed best-effort either way.
func (s Service) EnsureToolchain(ctx context.Context) error {
	if _, err := s.PM.Version(ctx); err == nil {
		s.refreshSources(ctx)
		return nil
	}

	log.Warn().Str("url", InstallerURL).Msg("winget not found, opening installer page")
	if err := s.Launcher.OpenURL(InstallerURL); err != nil {
		// The user can still reach the page by hand, so keep waiting.
		log.Warn().Err(err).Msg("failed to open installer page")
	}
	if !s.Confirm.Confirm("Install winget from " + InstallerURL + ", then continue") {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("winget installation was declined")
	}
	if _, err := s.PM.Version(ctx); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("winget is still not available after manual install").
			WithCause(err)
	}
	s.refreshSources(ctx)
	return nil
}

func (s Service) refreshSources(ctx context.Context) {
	if err := s.PM.UpdateSources(ctx); err != nil {
		log.Warn().Err(err).Msg("source refresh failed, continuing with stale metadata")
	}
}
