package cmd

import (
	"fmt"
	"path/filepath"

	"srcbundle/pkg/collect"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveRoot locates the project root; replaced in tests.
var resolveRoot = collect.ResolveRoot

// runCollect runs one collection rooted next to the executable and prints the
// start and final banners.
func runCollect(cmd *cobra.Command, logger *zap.Logger) error {
	root, err := resolveRoot()
	if err != nil {
		logger.Error("Failed to resolve project root", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Starting source code collection...")
	fmt.Fprintf(out, "Project root assumed to be: %s\n", root)
	fmt.Fprintf(out, "Output will be saved to: %s\n", filepath.Join(root, collect.OutputName))

	summary, err := collect.Run(collect.DefaultConfig(root), logger)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nAn error occurred while writing to the output file %s: %v\n",
			filepath.Join(root, collect.OutputName), err)
		return fmt.Errorf("source code collection failed: %w", err)
	}

	fmt.Fprintf(out, "\nSource code collection complete. %d files (%d unreadable, %s) saved into '%s'.\n",
		summary.Included+summary.Failed,
		summary.Failed,
		humanize.Bytes(uint64(summary.BytesWritten)),
		collect.OutputName,
	)
	return nil
}
