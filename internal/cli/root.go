// Package cli wires the lvtopo command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/internal/version"
)

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lvtopo",
		Short:         "lvtopo generates router-level Barabási–Albert topologies",
		Version:       version.FullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	rootCmd.AddCommand(newGenerateCmd(), newConfigCmd(), newVersionCmd())

	return rootCmd
}

// newVersionCmd prints the build stamp.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lvtopo",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "lvtopo "+version.Version())
			fmt.Fprintln(w, "commit: "+version.Commit())
			fmt.Fprintln(w, "built:  "+version.BuildTime())
		},
	}
}

// Execute runs the root command against os.Args and exits with status 1
// after printing the error to stderr.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
