// Package hclload implements config.Loader on top of HCL. Users declare
// toolchain, codegen, and benchmark blocks in .hcl files; the loader parses
// them and translates everything into the format-agnostic config model.
package hclload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/hdlforge/hdlforge/internal/config"
	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/fsutil"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL build-description loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all recognized top-level blocks from a single file.
type fileRoot struct {
	Toolchain  *toolchainBlock   `hcl:"toolchain,block"`
	Codegens   []*codegenBlock   `hcl:"codegen,block"`
	Benchmarks []*benchmarkBlock `hcl:"benchmark,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

type toolchainBlock struct {
	CodegenTool   string `hcl:"codegen_tool"`
	BenchmarkTool string `hcl:"benchmark_tool,optional"`
}

type codegenBlock struct {
	Name        string    `hcl:"name,label"`
	Src         string    `hcl:"src"`
	VerilogFile string    `hcl:"verilog_file"`
	CodegenArgs cty.Value `hcl:"codegen_args,optional"`

	ModuleSigFile      string `hcl:"module_sig_file,optional"`
	ScheduleFile       string `hcl:"schedule_file,optional"`
	VerilogLineMapFile string `hcl:"verilog_line_map_file,optional"`
	BlockIRFile        string `hcl:"block_ir_file,optional"`
}

type benchmarkBlock struct {
	Name    string `hcl:"name,label"`
	Codegen string `hcl:"codegen"`
	OptIR   string `hcl:"opt_ir"`
}

// Load parses every .hcl file under the given paths and merges the
// discovered blocks into one validated model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl build files found under %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	toolchainSeen := false

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Toolchain != nil {
			if toolchainSeen {
				return nil, fmt.Errorf("%s: duplicate toolchain block", file)
			}
			toolchainSeen = true
			model.Toolchain = config.Toolchain{
				CodegenTool:   root.Toolchain.CodegenTool,
				BenchmarkTool: root.Toolchain.BenchmarkTool,
			}
		}

		for _, block := range root.Codegens {
			target, err := translateCodegen(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			if _, ok := model.Codegens[target.Name]; ok {
				return nil, fmt.Errorf("%s: duplicate codegen target %q", file, target.Name)
			}
			model.Codegens[target.Name] = target
		}

		for _, block := range root.Benchmarks {
			target := translateBenchmark(block)
			if _, ok := model.Benchmarks[target.Name]; ok {
				return nil, fmt.Errorf("%s: duplicate benchmark target %q", file, target.Name)
			}
			model.Benchmarks[target.Name] = target
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"codegen_targets", len(model.Codegens), "benchmark_targets", len(model.Benchmarks))
	return model, nil
}

// findAllHCLFiles expands the given paths (files or directories) into a
// deduplicated, sorted list of .hcl files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				add(p)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}
	return allFiles, nil
}
