package tools_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petasbytes/tool-loop/tools"
)

func TestReadFile_Happy(t *testing.T) {
	dir := mkTestDir(t)
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi\nthere"), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	res := dispatch(t, tools.Read, tools.ReadInput{FilePath: rel(t, "a.txt")})
	if res.IsError() {
		t.Fatalf("unexpected err: %v", res.Text())
	}
	if res.Text() != "hi\nthere" {
		t.Fatalf("got %q", res.Text())
	}
}

func TestReadFile_NotFound(t *testing.T) {
	p := rel(t, "does-not-exist.txt")
	res := dispatch(t, tools.Read, tools.ReadInput{FilePath: p})
	if !res.IsError() {
		t.Fatal("expected error")
	}
	if want := "File not found: " + p; res.Text() != want {
		t.Fatalf("got %q want %q", res.Text(), want)
	}
}

func TestReadFile_DirectoryPath_Error(t *testing.T) {
	dir := mkTestDir(t)
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	p := rel(t, "sub")
	res := dispatch(t, tools.Read, tools.ReadInput{FilePath: p})
	if !res.IsError() {
		t.Fatal("expected error for directory path")
	}
	if want := "Path is not a file: " + p; res.Text() != want {
		t.Fatalf("got %q want %q", res.Text(), want)
	}
}

func TestReadFile_DenyEnv(t *testing.T) {
	dir := mkTestDir(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("API_KEY=secret"), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	for _, p := range []string{rel(t, ".env"), filepath.Join(dir, ".env")} {
		res := dispatch(t, tools.Read, tools.ReadInput{FilePath: p})
		if !res.IsError() {
			t.Fatalf("expected deny for %s", p)
		}
		if res.Text() != "Access to .env file is forbidden" {
			t.Fatalf("got %q", res.Text())
		}
	}
}

func TestReadFile_MissingArgument(t *testing.T) {
	for _, args := range []any{
		map[string]any{},
		map[string]any{"path": "a.txt"},
		map[string]any{"file_path": 42},
	} {
		res := dispatch(t, tools.Read, args)
		if !res.IsError() || res.Text() != "Missing file_path argument" {
			t.Fatalf("args %v: got %q (error=%v)", args, res.Text(), res.IsError())
		}
	}
}
