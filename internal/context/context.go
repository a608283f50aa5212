// Package context locates the taskboard project a command runs in.
package context

import (
	"os"
	"path/filepath"

	"github.com/example/taskboard/internal/config"
)

// ProjectContext represents the project a command belongs to.
type ProjectContext struct {
	Root       string `json:"root"`
	ConfigPath string `json:"config_path"` // Path to .taskboard/config.json
}

// DetectProjectContext walks up from dir looking for .taskboard/config.json.
// Returns nil when no ancestor holds one.
func DetectProjectContext(dir string) *ProjectContext {
	dir = filepath.Clean(dir)
	for {
		path := config.Path(dir)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return &ProjectContext{Root: dir, ConfigPath: path}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// ProjectRoot returns the root of the project enclosing the working directory,
// or the working directory itself when there is none yet.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if ctx := DetectProjectContext(wd); ctx != nil {
		return ctx.Root, nil
	}
	return wd, nil
}
