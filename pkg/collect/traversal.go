// File: pkg/collect/traversal.go
package collect

import (
	"io/fs"
	"os"
	"path/filepath"

	"srcbundle/pkg/exclude"

	"go.uber.org/zap"
)

// walker performs the recursive descent over the source tree. Excluded
// directories are dropped from the to-visit list before recursing, so nothing
// beneath them is ever listed or read.
type walker struct {
	root    string
	exts    exclude.ExtensionSet
	dirs    exclude.NameSet
	out     *blockWriter
	summary *Summary
	logger  *zap.Logger
}

// walk processes the files of dir in listing order, then descends into the
// surviving subdirectories. Only output errors are returned.
func (w *walker) walk(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("Failed to read directory, skipping subtree", zap.String("directory", dir), zap.Error(err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isDir, isLink := classify(path, entry)

		if isDir {
			if w.dirs.Contains(entry.Name()) {
				w.summary.Pruned++
				w.logger.Debug("Pruning excluded directory", zap.String("directory", relativePath(w.root, path)))
				continue
			}
			if isLink {
				w.logger.Debug("Not following symlinked directory", zap.String("directory", relativePath(w.root, path)))
				continue
			}
			subdirs = append(subdirs, path)
			continue
		}

		if err := w.visitFile(path, entry.Name()); err != nil {
			return err
		}
	}

	for _, sub := range subdirs {
		if err := w.walk(sub); err != nil {
			return err
		}
	}
	return nil
}

// visitFile filters one file and writes its block.
func (w *walker) visitFile(path, name string) error {
	rel := relativePath(w.root, path)

	if ext, ok := w.exts.Matches(name); ok {
		w.summary.Skipped++
		w.logger.Debug("Skipping file due to extension", zap.String("path", rel), zap.String("extension", ext))
		return nil
	}
	if w.dirs.Contains(name) {
		w.summary.Skipped++
		w.logger.Debug("Skipping file named like an excluded directory", zap.String("path", rel))
		return nil
	}

	w.logger.Info("Including file", zap.String("path", rel))

	content, readErr := readText(path)
	if readErr != nil {
		w.summary.Failed++
		w.logger.Error("Failed to read file", zap.String("path", rel), zap.Error(readErr))
		return w.out.writeErrorBlock(rel, readErr, true)
	}

	w.summary.Included++
	return w.out.writeBlock(rel, content, true)
}

// classify reports whether entry should be treated as a directory and whether
// it is a symbolic link. A link is a directory when its target is; a dangling
// link is a file and fails on read.
func classify(path string, entry fs.DirEntry) (isDir, isLink bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, true
	}
	return info.IsDir(), true
}
