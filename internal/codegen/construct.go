package codegen

import (
	"context"
	"fmt"

	"github.com/hdlforge/hdlforge/internal/action"
	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/toolchain"
)

// Construct builds the single external-tool invocation for a planned target.
// The command line is tool path, source IR path, every merged option as a
// --key=value flag in sorted key order, then one --output_<role>_path flag
// per planned artifact. All planned artifacts are declared as outputs; the
// source IR and the tool's runfiles are declared as inputs.
func Construct(ctx context.Context, target string, p *Plan, tool *toolchain.Tool, srcIR string) (*action.Action, error) {
	if tool == nil || tool.Path == "" {
		return nil, &toolchain.ToolResolutionError{Tool: "codegen_tool", Reason: "not resolved"}
	}
	if srcIR == "" {
		return nil, fmt.Errorf("codegen target %q: a source IR artifact is required", target)
	}

	cmd := action.NewCommand(tool.Path).
		AddPositional(srcIR).
		AddFlagMap(p.Args)
	for _, a := range p.Artifacts {
		cmd.AddFlag(fmt.Sprintf("output_%s_path", a.Role), a.Path)
	}

	inputs := make([]string, 0, 1+len(tool.Runfiles))
	inputs = append(inputs, srcIR)
	inputs = append(inputs, tool.Runfiles...)

	act := &action.Action{
		Name:        target,
		Description: fmt.Sprintf("Generating Verilog for %s", target),
		Argv:        cmd.Argv(),
		Outputs:     p.Artifacts,
		Inputs:      inputs,
	}
	ctxlog.FromContext(ctx).Debug("Constructed codegen action.",
		"target", target, "outputs", len(act.Outputs), "inputs", len(act.Inputs))
	return act, nil
}
