package context

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/taskboard/internal/config"
)

func TestDetectProjectContext(t *testing.T) {
	root := t.TempDir()
	if err := config.SaveConfig(root, &config.Config{Version: "1"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	nested := filepath.Join(root, "docs", "notes")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	tests := []struct {
		name string
		dir  string
	}{
		{name: "project root", dir: root},
		{name: "nested directory", dir: nested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := DetectProjectContext(tt.dir)
			if ctx == nil {
				t.Fatal("expected a project context")
			}
			if ctx.Root != root {
				t.Errorf("expected root %s, got %s", root, ctx.Root)
			}
			if ctx.ConfigPath != config.Path(root) {
				t.Errorf("expected config path %s, got %s", config.Path(root), ctx.ConfigPath)
			}
		})
	}
}

func TestDetectProjectContext_None(t *testing.T) {
	if ctx := DetectProjectContext(t.TempDir()); ctx != nil {
		t.Errorf("expected no context, got %+v", ctx)
	}
}

func TestDetectProjectContext_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(config.Path(root), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if ctx := DetectProjectContext(root); ctx != nil {
		t.Errorf("a directory is not a config file, got %+v", ctx)
	}
}
