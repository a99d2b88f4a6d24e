// Package config defines the format-agnostic model of the user's build
// description, along with the Loader interface that format-specific front
// ends (HCL today) implement.
package config

import (
	"fmt"
	"sort"
)

// Model is the unified representation of everything the user declared:
// the toolchain, the codegen targets, and the benchmark targets.
type Model struct {
	Toolchain  Toolchain
	Codegens   map[string]*CodegenTarget
	Benchmarks map[string]*BenchmarkTarget
}

// Toolchain names the external executables actions are constructed for.
type Toolchain struct {
	CodegenTool   string
	BenchmarkTool string
}

// CodegenTarget is one declared codegen request: a source IR artifact, the
// primary output filename, the option mapping, and optional explicit
// filenames for the companion artifacts.
type CodegenTarget struct {
	Name        string
	Src         string
	VerilogFile string
	Args        map[string]string

	ModuleSigFile      string
	ScheduleFile       string
	VerilogLineMapFile string
	BlockIRFile        string
}

// BenchmarkTarget is one declared benchmark request referencing a codegen
// target in the same model plus an optimized-IR artifact.
type BenchmarkTarget struct {
	Name    string
	Codegen string
	OptIR   string
}

// NewModel returns an empty, initialized model.
func NewModel() *Model {
	return &Model{
		Codegens:   make(map[string]*CodegenTarget),
		Benchmarks: make(map[string]*BenchmarkTarget),
	}
}

// CodegenNames returns the codegen target names sorted, for deterministic
// planning order.
func (m *Model) CodegenNames() []string {
	names := make([]string, 0, len(m.Codegens))
	for name := range m.Codegens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BenchmarkNames returns the benchmark target names sorted.
func (m *Model) BenchmarkNames() []string {
	names := make([]string, 0, len(m.Benchmarks))
	for name := range m.Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks cross-target consistency: every codegen target declares its
// required fields and every benchmark references a codegen target that
// exists. Option-key validation belongs to the planner, not here.
func (m *Model) Validate() error {
	for _, name := range m.CodegenNames() {
		t := m.Codegens[name]
		if t.Src == "" {
			return fmt.Errorf("codegen target %q: src is required", name)
		}
		if t.VerilogFile == "" {
			return fmt.Errorf("codegen target %q: verilog_file is required", name)
		}
	}
	for _, name := range m.BenchmarkNames() {
		t := m.Benchmarks[name]
		if t.Codegen == "" {
			return fmt.Errorf("benchmark target %q: codegen reference is required", name)
		}
		if _, ok := m.Codegens[t.Codegen]; !ok {
			return fmt.Errorf("benchmark target %q references unknown codegen target %q", name, t.Codegen)
		}
		if t.OptIR == "" {
			return fmt.Errorf("benchmark target %q: opt_ir is required", name)
		}
	}
	return nil
}
