package hclload

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/hdlforge/hdlforge/internal/config"
)

// translateCodegen turns a decoded codegen block into the format-agnostic
// target, converting the codegen_args object into the planner's
// string-to-string mapping.
func translateCodegen(block *codegenBlock) (*config.CodegenTarget, error) {
	args, err := argsToStringMap(block.CodegenArgs)
	if err != nil {
		return nil, fmt.Errorf("codegen target %q: %w", block.Name, err)
	}

	return &config.CodegenTarget{
		Name:               block.Name,
		Src:                block.Src,
		VerilogFile:        block.VerilogFile,
		Args:               args,
		ModuleSigFile:      block.ModuleSigFile,
		ScheduleFile:       block.ScheduleFile,
		VerilogLineMapFile: block.VerilogLineMapFile,
		BlockIRFile:        block.BlockIRFile,
	}, nil
}

func translateBenchmark(block *benchmarkBlock) *config.BenchmarkTarget {
	return &config.BenchmarkTarget{
		Name:    block.Name,
		Codegen: block.Codegen,
		OptIR:   block.OptIR,
	}
}

// argsToStringMap converts the raw codegen_args value into map[string]string.
// HCL numbers and bools are accepted and stringified via cty conversion; any
// value that cannot become a string is rejected here rather than half-way
// through planning.
func argsToStringMap(val cty.Value) (map[string]string, error) {
	args := make(map[string]string)
	if val == cty.NilVal || val.IsNull() {
		return args, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("codegen_args must be a map of strings: %w", err)
	}
	if converted.IsNull() {
		return args, nil
	}

	for it := converted.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("codegen_args[%s] must not be null", key.AsString())
		}
		args[key.AsString()] = elem.AsString()
	}
	return args, nil
}
