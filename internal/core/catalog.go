package core

import "wingetup/internal/types"

// DefaultCatalog returns the built-in table of developer applications.
// Callers receive a fresh slice; resolution never mutates shared state.
func DefaultCatalog() []types.Application {
	return []types.Application{
		{Name: "Git", ID: "Git.Git"},
		{Name: "Visual Studio Code", ID: "Microsoft.VisualStudioCode"},
		{Name: "Node.js", ID: "OpenJS.NodeJS"},
		{Name: "Python 3", ID: "Python.Python.3.12"},
		{Name: "7-Zip", ID: "7zip.7zip"},
		{Name: "Windows Terminal", ID: "Microsoft.WindowsTerminal"},
		{Name: "PowerShell", ID: "Microsoft.PowerShell"},
	}
}

// ResolveCatalog builds the effective table for one run. An empty id list
// keeps the catalog as-is. Otherwise the ids replace the catalog, and each
// id recovers a friendly display name by exact match against the catalog;
// unmatched ids use the id itself as the display name.
func ResolveCatalog(catalog []types.Application, ids []string) []types.Application {
	if len(ids) == 0 {
		return append([]types.Application(nil), catalog...)
	}
	known := make(map[string]string, len(catalog))
	for _, app := range catalog {
		known[app.ID] = app.Name
	}
	resolved := make([]types.Application, 0, len(ids))
	for _, id := range ids {
		name := id
		if friendly, ok := known[id]; ok {
			name = friendly
		}
		resolved = append(resolved, types.Application{Name: name, ID: id})
	}
	return resolved
}
