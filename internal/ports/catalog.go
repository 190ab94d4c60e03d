package ports

import "wingetup/internal/types"

// CatalogPort loads an application catalog from an external source.
type CatalogPort interface {
	Load(path string) ([]types.Application, error)
}
