package benchmark

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlforge/hdlforge/internal/artifact"
	"github.com/hdlforge/hdlforge/internal/codegen"
	"github.com/hdlforge/hdlforge/internal/testutil"
	"github.com/hdlforge/hdlforge/internal/toolchain"
)

func pipelineInfo(t *testing.T) *codegen.Info {
	t.Helper()
	ctx := testutil.Context(t)

	p, err := codegen.NewPlan(ctx, map[string]string{
		"generator":       "pipeline",
		"pipeline_stages": "4",
		"clock_period_ps": "1000",
		"top":             "fir",
	}, "fir.sv", codegen.Overrides{})
	require.NoError(t, err)
	return codegen.PackageInfo("fir", p)
}

func optIR() *OptIRInfo {
	return &OptIRInfo{
		Target: "fir",
		OptIR:  artifact.Artifact{Role: RoleOptIR, Path: "fir.opt.ir"},
	}
}

func TestBuild_CommandLine(t *testing.T) {
	ctx := testutil.Context(t)
	tool := &toolchain.Tool{Name: "benchmark_tool", Path: "/tools/benchmark_main"}

	act, err := Build(ctx, "fir_bench", pipelineInfo(t), optIR(), tool)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/tools/benchmark_main",
		"fir.opt.ir",
		"fir.block.ir",
		"fir.sv",
		"--top=fir",
		"--delay_model=unit",
		"--pipeline_stages=4",
		"--clock_period_ps=1000",
	}, act.Argv)

	assert.Equal(t, "fir_bench", act.Name)
	require.Len(t, act.Outputs, 1)
	assert.Equal(t, RoleScript, act.Outputs[0].Role)
	assert.Equal(t, "fir_bench.sh", act.Outputs[0].Path)
}

func TestBuild_ScriptGolden(t *testing.T) {
	ctx := testutil.Context(t)
	tool := &toolchain.Tool{Name: "benchmark_tool", Path: "/tools/benchmark_main"}

	act, err := Build(ctx, "fir_bench", pipelineInfo(t), optIR(), tool)
	require.NoError(t, err)
	require.NotNil(t, act.Script)
	assert.True(t, act.Script.Executable)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "pipeline_runner", []byte(act.Script.Content))
}

func TestBuild_OmitsAbsentScalars(t *testing.T) {
	ctx := testutil.Context(t)
	tool := &toolchain.Tool{Name: "benchmark_tool", Path: "/tools/benchmark_main"}

	p, err := codegen.NewPlan(ctx, map[string]string{"top": "adder"}, "adder.sv", codegen.Overrides{})
	require.NoError(t, err)
	info := codegen.PackageInfo("adder", p)

	act, err := Build(ctx, "adder_bench", info, &OptIRInfo{
		Target: "adder",
		OptIR:  artifact.Artifact{Role: RoleOptIR, Path: "adder.opt.ir"},
	}, tool)
	require.NoError(t, err)

	// delay_model carries its default; the timing scalars were never set.
	assert.Contains(t, act.Argv, "--delay_model=unit")
	for _, arg := range act.Argv {
		assert.NotContains(t, arg, "pipeline_stages")
		assert.NotContains(t, arg, "clock_period_ps")
	}
}

func TestBuild_DeclaresInputs(t *testing.T) {
	ctx := testutil.Context(t)
	tool := &toolchain.Tool{
		Name:     "benchmark_tool",
		Path:     "/tools/benchmark_main",
		Runfiles: []string{"/tools/benchmark_main.runfiles/data.bin"},
	}

	act, err := Build(ctx, "fir_bench", pipelineInfo(t), optIR(), tool)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"fir.opt.ir",
		"fir.block.ir",
		"fir.sv",
		"/tools/benchmark_main.runfiles/data.bin",
	}, act.Inputs)
}

func TestBuild_MissingTop(t *testing.T) {
	ctx := testutil.Context(t)
	tool := &toolchain.Tool{Name: "benchmark_tool", Path: "/tools/benchmark_main"}

	p, err := codegen.NewPlan(ctx, map[string]string{}, "anon.sv", codegen.Overrides{})
	require.NoError(t, err)
	info := codegen.PackageInfo("anon", p)

	_, err = Build(ctx, "anon_bench", info, &OptIRInfo{
		Target: "anon",
		OptIR:  artifact.Artifact{Role: RoleOptIR, Path: "anon.opt.ir"},
	}, tool)

	var missingTop *MissingTopError
	require.ErrorAs(t, err, &missingTop)
	assert.Equal(t, "anon", missingTop.Target)
	assert.Contains(t, err.Error(), "anon")
}

func TestBuild_UnresolvedTool(t *testing.T) {
	ctx := testutil.Context(t)

	_, err := Build(ctx, "fir_bench", pipelineInfo(t), optIR(), nil)
	var toolErr *toolchain.ToolResolutionError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "benchmark_tool", toolErr.Tool)
}
