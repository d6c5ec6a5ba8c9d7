package cmd

import (
	"fmt"

	"srcbundle/pkg/logging"
	"srcbundle/pkg/version"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the srcbundle command tree. Running the root command
// without a subcommand performs the collection.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "srcbundle",
		Short: "srcbundle concatenates a project's sources into one text file",
		Long: `srcbundle collects pom.xml and every text file under src/ next to the
executable and writes them, each under a "--- <path> ---" header, into
banking.txt. Build output, VCS metadata and binary assets are left out.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(verbose, version.AppName, version.Get().Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd, logging.Logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped files and pruned directories")
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
