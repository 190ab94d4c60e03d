package app

import (
	"time"

	"wingetup/internal/ports"
	"wingetup/internal/types"
)

type RunRequest struct {
	Apps             []string
	CatalogPath      string
	SkipDependencies bool
	SkipUpdates      bool
	Pacing           time.Duration
}

type RunResult struct {
	Results []types.AppResult
	Report  types.Report
	Elapsed time.Duration
}

type TableRequest struct {
	Apps        []string
	CatalogPath string
}

type TableResult struct {
	Applications []types.Application
}

type DoctorResult struct {
	Elevated      bool
	WingetPresent bool
	WingetVersion string
	Host          ports.HostInfo
	HostKnown     bool
}
