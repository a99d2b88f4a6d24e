// Package benchmark constructs the downstream build action that runs the
// benchmarking tool against a prior codegen target's artifacts. The action's
// output is a generated, executable runner script.
package benchmark

import (
	"context"
	"fmt"

	"github.com/hdlforge/hdlforge/internal/action"
	"github.com/hdlforge/hdlforge/internal/artifact"
	"github.com/hdlforge/hdlforge/internal/codegen"
	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/options"
	"github.com/hdlforge/hdlforge/internal/toolchain"
)

// RoleScript is the logical role of the generated runner script.
const RoleScript artifact.Role = "benchmark_script"

// RoleOptIR is the logical role of the optimized-IR artifact consumed by the
// benchmark action.
const RoleOptIR artifact.Role = "opt_ir"

// OptIRInfo is the metadata record of an optimized-IR target, supplied
// alongside the codegen record.
type OptIRInfo struct {
	Target string
	OptIR  artifact.Artifact
}

// MissingTopError reports a benchmark request against a codegen record that
// has no resolvable top-level entity name.
type MissingTopError struct {
	Target string
}

func (e *MissingTopError) Error() string {
	return fmt.Sprintf("codegen target %q provides no top entity name; set top or module_name", e.Target)
}

// Build constructs the benchmark action for one target. The command line is
// benchmark tool, optimized-IR path, block-IR path, Verilog path, --top, and
// the delay-model/pipeline-stages/clock-period flags when the codegen record
// carries them. It fails before registering anything when the record lacks a
// top entity name or the tool is unresolved.
func Build(ctx context.Context, target string, info *codegen.Info, optIR *OptIRInfo, tool *toolchain.Tool) (*action.Action, error) {
	if tool == nil || tool.Path == "" {
		return nil, &toolchain.ToolResolutionError{Tool: "benchmark_tool", Reason: "not resolved"}
	}
	if !info.Top.OK {
		return nil, &MissingTopError{Target: info.Target}
	}

	cmd := action.NewCommand(tool.Path).
		AddPositional(optIR.OptIR.Path).
		AddPositional(info.BlockIR.Path).
		AddPositional(info.Verilog.Path).
		AddFlag(options.KeyTop, info.Top.Value)
	if info.DelayModel.OK {
		cmd.AddFlag(options.KeyDelayModel, info.DelayModel.Value)
	}
	if info.PipelineStages.OK {
		cmd.AddFlag(options.KeyPipelineStages, info.PipelineStages.Value)
	}
	if info.ClockPeriodPS.OK {
		cmd.AddFlag(options.KeyClockPeriodPS, info.ClockPeriodPS.Value)
	}

	script := &action.Script{
		Path:       target + ".sh",
		Content:    Render(cmd),
		Executable: true,
	}

	inputs := make([]string, 0, 3+len(tool.Runfiles))
	inputs = append(inputs, optIR.OptIR.Path, info.BlockIR.Path, info.Verilog.Path)
	inputs = append(inputs, tool.Runfiles...)

	act := &action.Action{
		Name:        target,
		Description: fmt.Sprintf("Benchmarking %s", info.Target),
		Argv:        cmd.Argv(),
		Outputs:     []artifact.Artifact{{Role: RoleScript, Path: script.Path}},
		Inputs:      inputs,
		Script:      script,
	}
	ctxlog.FromContext(ctx).Debug("Constructed benchmark action.",
		"target", target, "codegen_target", info.Target)
	return act, nil
}

// Render produces the runner script body for a benchmark command: shebang,
// fail-fast, the command itself, and an explicit success exit.
func Render(cmd *action.Command) string {
	return "#!/usr/bin/env bash\nset -e\n" + cmd.String() + "\nexit 0\n"
}
