package codegen

import (
	"github.com/hdlforge/hdlforge/internal/artifact"
	"github.com/hdlforge/hdlforge/internal/options"
)

// OptionalArtifact is an artifact handle that may be absent. Absence is
// explicit rather than encoded as a nil pointer.
type OptionalArtifact struct {
	Artifact artifact.Artifact
	OK       bool
}

// OptionalValue is a scalar configuration echo that may be absent.
type OptionalValue struct {
	Value string
	OK    bool
}

// Info is the metadata record produced once per codegen target and shared by
// reference with downstream action constructors. It is never mutated after
// construction.
type Info struct {
	// Target is the name of the codegen target that produced this record.
	Target string

	Verilog         artifact.Artifact
	ModuleSignature artifact.Artifact
	VerilogLineMap  artifact.Artifact
	BlockIR         artifact.Artifact
	// Schedule is absent when the plan suppressed the schedule artifact.
	Schedule OptionalArtifact

	DelayModel     OptionalValue
	Top            OptionalValue
	PipelineStages OptionalValue
	ClockPeriodPS  OptionalValue
}

// PackageInfo assembles the metadata record from a plan. Pure assembly: no
// validation beyond what planning already performed. The top-level entity
// name resolves to module_name when set, else top, else absent.
func PackageInfo(target string, p *Plan) *Info {
	info := &Info{Target: target}

	for _, a := range p.Artifacts {
		switch a.Role {
		case artifact.RoleVerilog:
			info.Verilog = a
		case artifact.RoleModuleSignature:
			info.ModuleSignature = a
		case artifact.RoleVerilogLineMap:
			info.VerilogLineMap = a
		case artifact.RoleBlockIR:
			info.BlockIR = a
		case artifact.RoleSchedule:
			info.Schedule = OptionalArtifact{Artifact: a, OK: true}
		}
	}

	if v, ok := p.Args[options.KeyModuleName]; ok {
		info.Top = OptionalValue{Value: v, OK: true}
	} else if v, ok := p.Args[options.KeyTop]; ok {
		info.Top = OptionalValue{Value: v, OK: true}
	}
	if v, ok := p.Args[options.KeyDelayModel]; ok {
		info.DelayModel = OptionalValue{Value: v, OK: true}
	}
	if v, ok := p.Args[options.KeyPipelineStages]; ok {
		info.PipelineStages = OptionalValue{Value: v, OK: true}
	}
	if v, ok := p.Args[options.KeyClockPeriodPS]; ok {
		info.ClockPeriodPS = OptionalValue{Value: v, OK: true}
	}

	return info
}
