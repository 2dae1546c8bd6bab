package tools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/petasbytes/tool-loop/tools"
)

var sharedDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tools-tests-")
	if err != nil {
		panic(err)
	}
	// Tools resolve relative paths against the working directory.
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	sharedDir = dir

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// Helper to create per-test relative paths
func rel(t *testing.T, elems ...string) string {
	return filepath.Join(append([]string{t.Name()}, elems...)...)
}

func mkTestDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(sharedDir, rel(t))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	return dir
}

// dispatch marshals args and runs them through a fresh dispatcher.
func dispatch(t *testing.T, name tools.Name, args any) tools.Result {
	t.Helper()
	b, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	res, err := tools.NewDispatcher("", nil).Dispatch(context.Background(), tools.Call{
		ID:        "call-" + t.Name(),
		Name:      string(name),
		Arguments: string(b),
	})
	if err != nil {
		t.Fatalf("unexpected dispatch error: %v", err)
	}
	return res
}
