package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlforge/hdlforge/internal/testutil"
)

func TestPackageInfo_ArtifactHandles(t *testing.T) {
	ctx := testutil.Context(t)

	p, err := NewPlan(ctx, map[string]string{"generator": "pipeline"}, "fir.sv", Overrides{})
	require.NoError(t, err)

	info := PackageInfo("fir", p)
	assert.Equal(t, "fir", info.Target)
	assert.Equal(t, "fir.sv", info.Verilog.Path)
	assert.Equal(t, "fir.sig.textproto", info.ModuleSignature.Path)
	assert.Equal(t, "fir.verilog_line_map.textproto", info.VerilogLineMap.Path)
	assert.Equal(t, "fir.block.ir", info.BlockIR.Path)
	require.True(t, info.Schedule.OK)
	assert.Equal(t, "fir.schedule.textproto", info.Schedule.Artifact.Path)
}

func TestPackageInfo_ScheduleAbsentInCombinationalMode(t *testing.T) {
	ctx := testutil.Context(t)

	p, err := NewPlan(ctx, map[string]string{"generator": "combinational"}, "b.sv", Overrides{})
	require.NoError(t, err)

	info := PackageInfo("b", p)
	assert.False(t, info.Schedule.OK)
}

func TestPackageInfo_TopResolution(t *testing.T) {
	ctx := testutil.Context(t)

	tests := []struct {
		name     string
		args     map[string]string
		wantOK   bool
		wantTop  string
	}{
		{"module_name wins over top", map[string]string{"module_name": "mod", "top": "entity"}, true, "mod"},
		{"top as fallback", map[string]string{"top": "entity"}, true, "entity"},
		{"neither present", map[string]string{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlan(ctx, tt.args, "x.sv", Overrides{})
			require.NoError(t, err)

			info := PackageInfo("x", p)
			assert.Equal(t, tt.wantOK, info.Top.OK)
			assert.Equal(t, tt.wantTop, info.Top.Value)
		})
	}
}

func TestPackageInfo_ScalarEchoes(t *testing.T) {
	ctx := testutil.Context(t)

	p, err := NewPlan(ctx, map[string]string{
		"generator":       "pipeline",
		"pipeline_stages": "4",
		"clock_period_ps": "1000",
		"delay_model":     "sky130",
	}, "fir.sv", Overrides{})
	require.NoError(t, err)

	info := PackageInfo("fir", p)
	require.True(t, info.DelayModel.OK)
	assert.Equal(t, "sky130", info.DelayModel.Value)
	require.True(t, info.PipelineStages.OK)
	assert.Equal(t, "4", info.PipelineStages.Value)
	require.True(t, info.ClockPeriodPS.OK)
	assert.Equal(t, "1000", info.ClockPeriodPS.Value)
}

func TestPackageInfo_DelayModelDefaultEchoed(t *testing.T) {
	ctx := testutil.Context(t)

	p, err := NewPlan(ctx, map[string]string{}, "y.sv", Overrides{})
	require.NoError(t, err)

	info := PackageInfo("y", p)
	require.True(t, info.DelayModel.OK)
	assert.Equal(t, "unit", info.DelayModel.Value)
	assert.False(t, info.PipelineStages.OK)
	assert.False(t, info.ClockPeriodPS.OK)
}
