package cli

import (
	"wingetup/internal/adapters"
	"wingetup/internal/app"
)

// newAppService builds the production service; assumeYes swaps the
// interactive confirmer for one that accepts every prompt.
func newAppService(assumeYes bool) app.Service {
	service := app.NewService()
	if assumeYes {
		service.Confirm = adapters.AutoConfirmer{}
	}
	return service
}
