package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"wingetup/internal/ports"
	"wingetup/internal/types"
)

type catalogDocument struct {
	Applications []types.Application `yaml:"applications"`
}

// CatalogFileAdapter loads a YAML catalog replacing the built-in table.
type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

func (CatalogFileAdapter) Load(path string) ([]types.Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read catalog file").
			WithCause(err)
	}
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog file").
			WithCause(err)
	}
	if len(doc.Applications) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog file lists no applications")
	}
	seen := make(map[string]struct{}, len(doc.Applications))
	for i := range doc.Applications {
		app := &doc.Applications[i]
		app.ID = strings.TrimSpace(app.ID)
		app.Name = strings.TrimSpace(app.Name)
		if app.ID == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog entry is missing an id")
		}
		if app.Name == "" {
			app.Name = app.ID
		}
		if _, dup := seen[app.ID]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog lists duplicate id " + app.ID)
		}
		seen[app.ID] = struct{}{}
	}
	return doc.Applications, nil
}

var _ ports.CatalogPort = CatalogFileAdapter{}
