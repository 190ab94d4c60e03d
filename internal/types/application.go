package types

// Application pairs a human-readable display name with the package
// manager's canonical identifier for it.
type Application struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// AppResult records the outcome for one processed application.
type AppResult struct {
	App     Application
	Outcome Outcome
}

// UpgradeCandidate is one line of the package manager's upgrade listing:
// an installed package with a newer version available. Installed may be
// empty when the source does not know the installed version.
type UpgradeCandidate struct {
	ID        string
	Installed string
	Available string
}
