package main

import (
	"log"
	"os"
	"strings"

	"srcbundle/cmd"
	"srcbundle/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if logging.Logger.Core().Enabled(zap.FatalLevel) {
			logging.Logger.Fatal("srcbundle execution failed", zap.Error(err))
		}
		// Logger setup never ran (or failed), so report through the standard logger.
		log.Fatalf("srcbundle execution failed: %v", err)
	}

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.Logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
