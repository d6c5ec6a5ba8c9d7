// Package collect concatenates a project's manifest and source tree into a
// single text artifact, one headed block per file.
package collect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// createOutput opens the artifact for a run; replaced in tests.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Run writes the aggregate artifact described by cfg.
//
// The output file is truncated and held open for the whole run. Files that
// cannot be read become ERROR READING blocks and the run continues; only a
// failure to create, write, flush or close the output is returned. A partial
// artifact may remain on disk in that case.
func Run(cfg Config, logger *zap.Logger) (summary *Summary, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		logger.Error("Failed to resolve project root", zap.String("root", cfg.Root), zap.Error(err))
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	outputPath := filepath.Join(root, cfg.OutputName)

	logger.Info("Starting source code collection",
		zap.String("root", root),
		zap.String("output", outputPath),
		zap.Int("skipExtensions", cfg.Extensions.Len()),
		zap.Int("skipDirs", cfg.Dirs.Len()),
	)

	outFile, err := createOutput(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("failed to close output file: %w", closeErr))
		}
	}()

	summary = &Summary{OutputPath: outputPath}
	out := newBlockWriter(outFile)

	if err := includeManifest(root, cfg.ManifestName, out, summary, logger); err != nil {
		logger.Error("Failed to write manifest", zap.String("file", outputPath), zap.Error(err))
		return summary, err
	}

	w := &walker{
		root:    root,
		exts:    cfg.Extensions,
		dirs:    cfg.Dirs,
		out:     out,
		summary: summary,
		logger:  logger,
	}
	if err := walkSource(w, filepath.Join(root, cfg.SourceDir)); err != nil {
		logger.Error("Failed to write source files", zap.String("file", outputPath), zap.Error(err))
		return summary, err
	}

	if err := out.flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return summary, err
	}

	summary.BytesWritten = out.written()
	summary.Elapsed = time.Since(startTime)
	logger.Info("Source code collection complete",
		zap.String("output", outputPath),
		zap.Int("included", summary.Included),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("pruned", summary.Pruned),
		zap.Int64("bytes", summary.BytesWritten),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// includeManifest writes the root-level manifest block when the manifest is a
// regular file. A read failure becomes an error block; only write errors are
// returned.
func includeManifest(root, name string, out *blockWriter, summary *Summary, logger *zap.Logger) error {
	path := filepath.Join(root, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		logger.Info("Manifest not found in the project root, skipping", zap.String("manifest", name))
		return nil
	}

	logger.Info("Including manifest", zap.String("path", name))
	content, readErr := readText(path)
	if readErr != nil {
		summary.Failed++
		logger.Error("Failed to read manifest", zap.String("path", name), zap.Error(readErr))
		return out.writeErrorBlock(name, readErr, false)
	}

	summary.Included++
	return out.writeBlock(name, content, false)
}

// walkSource walks srcRoot when it exists and is a directory.
func walkSource(w *walker, srcRoot string) error {
	info, err := os.Stat(srcRoot)
	if err != nil || !info.IsDir() {
		w.logger.Info("Source directory not found or not a directory, skipping walk", zap.String("directory", srcRoot))
		return nil
	}

	w.logger.Info("Walking directory", zap.String("directory", srcRoot))
	if err := w.walk(srcRoot); err != nil {
		return err
	}
	w.logger.Info("Finished walking directory", zap.String("directory", srcRoot))
	return nil
}
