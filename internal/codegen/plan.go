// Package codegen plans a single hardware-codegen build step: it merges and
// validates the option mapping, decides the artifact set, constructs the
// external-tool invocation, and packages the metadata record consumed by
// downstream actions.
package codegen

import (
	"context"
	"fmt"

	"github.com/hdlforge/hdlforge/internal/artifact"
	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/options"
)

// GeneratorMode is the codegen strategy derived from the "generator" option.
// It controls whether a schedule artifact is produced.
type GeneratorMode string

const (
	ModeCombinational GeneratorMode = "combinational"
	ModePipeline      GeneratorMode = "pipeline"
	ModeOther         GeneratorMode = "other"
)

// modeOf derives the generator mode from the merged option mapping. An
// absent generator key is non-combinational.
func modeOf(merged map[string]string) GeneratorMode {
	switch merged[options.KeyGenerator] {
	case "combinational":
		return ModeCombinational
	case "pipeline":
		return ModePipeline
	default:
		return ModeOther
	}
}

// Overrides carries explicit caller-chosen filenames for the companion
// artifacts. Empty fields fall back to derived names.
type Overrides struct {
	ModuleSignature string
	Schedule        string
	VerilogLineMap  string
	BlockIR         string
}

// Plan is the immutable result of planning one codegen target. The artifact
// list is a pure function of (verilog basename, mode, overrides): re-planning
// identical inputs yields an identical, order-stable list.
type Plan struct {
	Mode GeneratorMode
	// Args is the validated option mapping merged over the defaults.
	Args      map[string]string
	Basename  string
	Artifacts []artifact.Artifact
}

// NewPlan validates args against the recognized key set, merges them over the
// defaults, checks the primary filename extension against the SystemVerilog
// mode, and derives the full artifact set.
//
// An explicitly overridden schedule filename is honored even in combinational
// mode; only the derived schedule artifact is suppressed there.
func NewPlan(ctx context.Context, args map[string]string, verilogFile string, ov Overrides) (*Plan, error) {
	if verilogFile == "" {
		return nil, fmt.Errorf("a verilog_file output name is required")
	}

	validated, err := options.Validate(args)
	if err != nil {
		return nil, err
	}

	merged := options.Merge(options.Defaults(), validated)
	systemVerilog := options.SystemVerilog(merged)
	if err := options.ValidateOutputExtension(verilogFile, systemVerilog); err != nil {
		return nil, err
	}

	mode := modeOf(merged)
	base := artifact.Basename(verilogFile)
	ctxlog.FromContext(ctx).Debug("Planning codegen artifacts.",
		"basename", base, "mode", string(mode), "system_verilog", systemVerilog)

	pick := func(override string, role artifact.Role) string {
		if override != "" {
			return override
		}
		return artifact.Derive(base, role, systemVerilog)
	}

	artifacts := []artifact.Artifact{
		{Role: artifact.RoleVerilog, Path: verilogFile},
		{Role: artifact.RoleModuleSignature, Path: pick(ov.ModuleSignature, artifact.RoleModuleSignature)},
	}
	if mode != ModeCombinational || ov.Schedule != "" {
		artifacts = append(artifacts, artifact.Artifact{
			Role: artifact.RoleSchedule,
			Path: pick(ov.Schedule, artifact.RoleSchedule),
		})
	}
	artifacts = append(artifacts,
		artifact.Artifact{Role: artifact.RoleVerilogLineMap, Path: pick(ov.VerilogLineMap, artifact.RoleVerilogLineMap)},
		artifact.Artifact{Role: artifact.RoleBlockIR, Path: pick(ov.BlockIR, artifact.RoleBlockIR)},
	)

	return &Plan{
		Mode:      mode,
		Args:      merged,
		Basename:  base,
		Artifacts: artifacts,
	}, nil
}

// Find returns the planned artifact for a role.
func (p *Plan) Find(role artifact.Role) (artifact.Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Role == role {
			return a, true
		}
	}
	return artifact.Artifact{}, false
}
