// Package toolchain resolves the external codegen and benchmark executables
// and their runfile closures before any build action is constructed.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/fsutil"
)

// Tool is a resolved executable plus the runfiles it needs at execution time.
type Tool struct {
	Name     string
	Path     string
	Runfiles []string
}

// Toolchain bundles the two executables the planner constructs actions for.
type Toolchain struct {
	Codegen   *Tool
	Benchmark *Tool
}

// ToolResolutionError reports an unavailable or unusable toolchain
// executable. It is fatal: no action referencing the tool is registered.
type ToolResolutionError struct {
	Tool   string
	Reason string
}

func (e *ToolResolutionError) Error() string {
	return fmt.Sprintf("toolchain executable %q unavailable: %s", e.Tool, e.Reason)
}

// Resolve locates both configured executables. The benchmark tool is only
// required when benchmark targets exist, so an empty benchmarkPath resolves
// to a nil Benchmark rather than an error.
func Resolve(ctx context.Context, codegenPath, benchmarkPath string) (*Toolchain, error) {
	logger := ctxlog.FromContext(ctx)

	codegen, err := resolveTool(ctx, "codegen_tool", codegenPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved codegen tool.", "path", codegen.Path, "runfiles", len(codegen.Runfiles))

	tc := &Toolchain{Codegen: codegen}
	if benchmarkPath == "" {
		return tc, nil
	}

	benchmark, err := resolveTool(ctx, "benchmark_tool", benchmarkPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved benchmark tool.", "path", benchmark.Path, "runfiles", len(benchmark.Runfiles))
	tc.Benchmark = benchmark
	return tc, nil
}

// resolveTool turns a configured path into a usable Tool. Bare names are
// looked up on $PATH; anything containing a separator is checked directly.
func resolveTool(ctx context.Context, name, path string) (*Tool, error) {
	if path == "" {
		return nil, &ToolResolutionError{Tool: name, Reason: "no executable configured"}
	}

	resolved := path
	if strings.ContainsRune(path, os.PathSeparator) {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &ToolResolutionError{Tool: name, Reason: err.Error()}
		}
		if info.IsDir() {
			return nil, &ToolResolutionError{Tool: name, Reason: fmt.Sprintf("%s is a directory", path)}
		}
		if info.Mode().Perm()&0o111 == 0 {
			return nil, &ToolResolutionError{Tool: name, Reason: fmt.Sprintf("%s is not executable", path)}
		}
	} else {
		found, err := exec.LookPath(path)
		if err != nil {
			return nil, &ToolResolutionError{Tool: name, Reason: err.Error()}
		}
		resolved = found
	}

	// Bazel-style convention: a sibling <tool>.runfiles tree travels with the
	// executable and must be declared as action inputs.
	runfiles, err := fsutil.ListFiles(resolved + ".runfiles")
	if err != nil {
		return nil, &ToolResolutionError{Tool: name, Reason: err.Error()}
	}

	return &Tool{Name: name, Path: resolved, Runfiles: runfiles}, nil
}
