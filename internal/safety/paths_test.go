package safety_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/petasbytes/tool-loop/internal/safety"
)

func TestCheckBaseName_DeniesEnvAtAnyDepth(t *testing.T) {
	cases := []string{
		".env",
		"./.env",
		"sub/dir/.env",
		filepath.Join(t.TempDir(), ".env"),
		"/does/not/exist/.env",
	}
	for _, p := range cases {
		t.Run(p, func(t *testing.T) {
			err := safety.CheckBaseName(p)
			if err == nil {
				t.Fatalf("expected deny for %q", p)
			}
			var te safety.ToolError
			if !errors.As(err, &te) {
				t.Fatalf("expected ToolError, got %T: %v", err, err)
			}
			if te.Code != safety.CodeDeniedEnv {
				t.Fatalf("unexpected code: %s", te.Code)
			}
			if err.Error() != "Access to .env file is forbidden" {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		})
	}
}

func TestCheckBaseName_AllowsLookalikes(t *testing.T) {
	for _, p := range []string{".env.example", "env", "x.env", ".envrc", ".env/inner.txt", "a/.env.local"} {
		if err := safety.CheckBaseName(p); err != nil {
			t.Fatalf("unexpected deny for %q: %v", p, err)
		}
	}
}

func TestToolError_Messages(t *testing.T) {
	if got := safety.NotFound("a/b.txt").Error(); got != "File not found: a/b.txt" {
		t.Fatalf("got %q", got)
	}
	if got := safety.NotAFile("a/dir").Error(); got != "Path is not a file: a/dir" {
		t.Fatalf("got %q", got)
	}
}
