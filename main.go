package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "countmore",
		Short: "Find out where your vote counts more",
		Long: `countmore compares a student's home and school states by how pivotal
each is in the presidential election, and serves the Count More API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newSelectCmd(),
		newMarginCmd(),
		newAdminKeyCmd(),
	)
	return rootCmd
}
