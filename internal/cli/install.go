package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wingetup/internal/app"
	"wingetup/internal/types"
)

type installOptions struct {
	Apps             []string
	Catalog          string
	SkipDependencies bool
	SkipUpdates      bool
	Pacing           time.Duration
	Yes              bool
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install or update the developer application set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Apps, "app", nil, "Package id to process (repeatable, replaces the default table)")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "YAML catalog file replacing the built-in table")
	cmd.Flags().BoolVar(&opts.SkipDependencies, "skip-dependencies", false, "Skip the winget availability check and source refresh")
	cmd.Flags().BoolVar(&opts.SkipUpdates, "skip-updates", false, "Leave installed applications alone")
	cmd.Flags().DurationVar(&opts.Pacing, "pacing", 2*time.Second, "Delay between applications")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Answer yes to every prompt")

	_ = viper.BindPFlag("apps", cmd.Flags().Lookup("app"))
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("skip_dependencies", cmd.Flags().Lookup("skip-dependencies"))
	_ = viper.BindPFlag("skip_updates", cmd.Flags().Lookup("skip-updates"))
	_ = viper.BindPFlag("pacing", cmd.Flags().Lookup("pacing"))
	_ = viper.BindPFlag("assume_yes", cmd.Flags().Lookup("yes"))

	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := newAppService(resolveBool(cmd, opts.Yes, "assume_yes", "yes"))
	result, err := service.Run(ctx, app.RunRequest{
		Apps:             resolveStrings(cmd, opts.Apps, "apps", "app"),
		CatalogPath:      resolveString(cmd, opts.Catalog, "catalog", "catalog"),
		SkipDependencies: resolveBool(cmd, opts.SkipDependencies, "skip_dependencies", "skip-dependencies"),
		SkipUpdates:      resolveBool(cmd, opts.SkipUpdates, "skip_updates", "skip-updates"),
		Pacing:           resolveDuration(cmd, opts.Pacing, "pacing", "pacing"),
	})
	if err != nil {
		return err
	}
	printRunResult(result)
	return nil
}

func printRunResult(result app.RunResult) {
	for _, entry := range result.Results {
		fmt.Printf("%s %s (%s): %s\n", outcomeMarker(entry.Outcome), entry.App.Name, entry.App.ID, entry.Outcome)
	}
	fmt.Printf("processed %d applications in %s\n", result.Report.Total, result.Elapsed.Round(time.Millisecond))
	for _, outcome := range types.AllOutcomes {
		fmt.Printf("  %s: %d\n", outcome, result.Report.Counts[outcome])
	}
	if result.Report.RateKnown {
		fmt.Printf("success rate: %.1f%%\n", result.Report.SuccessRate)
	} else {
		fmt.Println("success rate: n/a")
	}
}

func outcomeMarker(outcome types.Outcome) string {
	switch outcome {
	case types.OutcomeFailed:
		return "[!!]"
	case types.OutcomeSkipped:
		return "[--]"
	default:
		return "[ok]"
	}
}
