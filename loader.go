// loader.go - reads a flat binary image from disk into engine memory,
// adapted from program_executor.go's sandboxed-path-validation and
// oversize-check pattern, collapsed to the single x86 target this module
// supports (the host's six-way architecture switch and MMIO-register
// control surface have no equivalent here - see DESIGN.md).

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader copies program images from a sandboxed base directory into an
// Emulator's memory.
type Loader struct {
	baseDir string
}

// NewLoader resolves baseDir to an absolute path so later joins can be
// checked for directory escape, mirroring NewProgramExecutor. An empty
// baseDir disables sandboxing entirely: the CLI passes image paths given
// directly by the operator, not ones a running guest chose, so there is
// nothing to sandbox against unless the caller opts in.
func NewLoader(baseDir string) *Loader {
	if baseDir == "" {
		return &Loader{}
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		abs = baseDir
	}
	return &Loader{baseDir: abs}
}

// LoadFile reads the image at path (relative to the loader's base
// directory) and copies it into e's memory at loadAddr.
func (l *Loader) LoadFile(e *Emulator, path string, loadAddr uint32) error {
	fullPath, ok := l.sanitizePath(path)
	if !ok {
		return fmt.Errorf("loader: path %q escapes base directory", path)
	}

	st, err := os.Stat(fullPath)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	if st.IsDir() {
		return fmt.Errorf("loader: %q is a directory", path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}

	if int(loadAddr)+len(data) > e.MemSize() {
		return fmt.Errorf("loader: image of %d bytes at 0x%08X exceeds %d-byte memory", len(data), loadAddr, e.MemSize())
	}

	e.LoadImage(loadAddr, data)
	return nil
}

// sanitizePath rejects absolute paths and parent-directory escapes, then
// joins against the base directory and double-checks the result is still
// contained within it.
func (l *Loader) sanitizePath(path string) (string, bool) {
	if l.baseDir == "" {
		return path, true
	}
	if filepath.IsAbs(path) || strings.Contains(path, "..") {
		return "", false
	}
	fullPath := filepath.Join(l.baseDir, path)
	rel, err := filepath.Rel(l.baseDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return fullPath, true
}
