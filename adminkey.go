package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/countmore/countmore/auth"
	"github.com/countmore/countmore/cliparse"
)

func newAdminKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin-key",
		Short: "Print the X-Admin-Key for the event reporting endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.Load(cmd.Flags())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateAdminKey(auth.ScopeAnalytics, cfg.AdminKeySalt))
			return nil
		},
	}

	cliparse.RegisterFlags(cmd.Flags())
	return cmd
}
