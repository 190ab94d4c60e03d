package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wingetup/internal/app"
)

type listOptions struct {
	Apps    []string
	Catalog string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the resolved application table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Apps, "app", nil, "Package id to resolve (repeatable)")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "YAML catalog file replacing the built-in table")
	_ = viper.BindPFlag("apps", cmd.Flags().Lookup("app"))
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	service := newAppService(false)
	result, err := service.Table(app.TableRequest{
		Apps:        resolveStrings(cmd, opts.Apps, "apps", "app"),
		CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
	})
	if err != nil {
		return err
	}
	for _, entry := range result.Applications {
		fmt.Printf("%s\t%s\n", entry.Name, entry.ID)
	}
	return nil
}
