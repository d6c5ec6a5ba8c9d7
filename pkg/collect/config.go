// File: pkg/collect/config.go
package collect

import (
	"fmt"
	"os"
	"path/filepath"

	"srcbundle/pkg/exclude"
)

// Fixed names resolved against the project root.
const (
	ManifestName = "pom.xml"     // Included first when present at the root.
	SourceDir    = "src"         // The only subtree that is walked.
	OutputName   = "banking.txt" // Aggregate artifact written at the root.
)

// Extensions that never make it into the output: compiled classes and
// archives, logs and temporary files, source maps, binary assets, IDE and
// editor files. A dot-file such as ".log" has no extension and is kept.
var defaultSkipExtensions = []string{
	".class", ".jar", ".war", ".ear", ".zip", ".tar", ".gz", ".rar",
	".log", ".lock", ".bak", ".tmp",
	".tsbuildinfo", ".js.map", ".css.map",
	".woff", ".woff2", ".ttf", ".eot", ".svg", ".png", ".jpg", ".jpeg", ".gif", ".ico",
	".iml", ".ipr", ".iws",
	".swp", ".swo",
}

// Dot-files skipped by their whole name.
var defaultSkipDotFiles = []string{
	".DS_Store",
}

// Directory names pruned before descent: build output, VCS and IDE metadata,
// tool caches and vendored dependencies.
var defaultSkipDirs = []string{
	"node_modules", "dist", "build", "out",
	"target",
	"logs",
	".idea", ".git", ".svn", ".hg",
	".mvn", ".gradle",
	"__pycache__",
	"vendor",
}

// Config holds everything a collection run needs.
type Config struct {
	Root         string               // Project root; every other path is resolved against it.
	ManifestName string               // Root-level file included before the walk.
	SourceDir    string               // Subdirectory of Root walked recursively.
	OutputName   string               // Output file name, created at Root.
	Extensions   exclude.ExtensionSet // File extensions to skip.
	Dirs         exclude.NameSet      // Directory names to prune (and file names to skip).
}

// DefaultConfig returns the fixed configuration rooted at root.
func DefaultConfig(root string) Config {
	return Config{
		Root:         root,
		ManifestName: ManifestName,
		SourceDir:    SourceDir,
		OutputName:   OutputName,
		Extensions:   exclude.NewExtensionSet(defaultSkipExtensions...).WithDotFiles(defaultSkipDotFiles...),
		Dirs:         exclude.NewNameSet(defaultSkipDirs...),
	}
}

// ResolveRoot returns the directory holding the running executable.
func ResolveRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
