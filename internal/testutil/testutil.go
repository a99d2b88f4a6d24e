// Package testutil provides shared helpers for the planner's test suites:
// silent logger contexts, fixture files, and fake toolchain executables.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hdlforge/hdlforge/internal/ctxlog"
)

// Context returns a context carrying a logger that discards everything, so
// component tests stay quiet.
func Context(t *testing.T) context.Context {
	t.Helper()
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// WriteFile writes content into dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// MakeTool creates an executable fake tool binary under dir and returns its
// path.
func MakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

// MakeToolWithRunfiles creates a fake tool plus a sibling <tool>.runfiles
// tree containing the named files.
func MakeToolWithRunfiles(t *testing.T, dir, name string, runfiles ...string) string {
	t.Helper()
	path := MakeTool(t, dir, name)
	for _, rf := range runfiles {
		WriteFile(t, path+".runfiles", rf, "runfile\n")
	}
	return path
}
