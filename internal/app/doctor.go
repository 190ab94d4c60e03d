package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Doctor reports the environment state without mutating anything:
// elevation, winget presence and version, and host facts.
func (s Service) Doctor(ctx context.Context) (DoctorResult, error) {
	result := DoctorResult{}

	elevated, err := s.Privilege.Elevated()
	if err != nil {
		log.Warn().Err(err).Msg("could not determine elevation state")
	} else {
		result.Elevated = elevated
	}

	if version, err := s.PM.Version(ctx); err == nil {
		result.WingetPresent = true
		result.WingetVersion = version
	}

	info, err := s.HostInfo.Collect()
	if err != nil {
		log.Warn().Err(err).Msg("could not collect host facts")
	} else {
		result.Host = info
		result.HostKnown = true
	}

	return result, nil
}
