package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/idmint"
)

func newInitCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init NAMESPACE...",
		Short: "Create empty registry files for namespaces",
		Long:  `Create an empty registry file for each namespace. Existing registries are left untouched.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := flags.config(cmd)
			if err != nil {
				return err
			}
			config.EnsureUnique = true
			ctx := cmd.Context()
			return idmint.Run(ctx, func(srv *idmint.Service) error {
				for _, namespace := range args {
					if err := srv.Store().Create(ctx, namespace); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), namespace)
				}
				return nil
			}, idmint.WithConfig(config))
		},
	}
}
