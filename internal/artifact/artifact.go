// Package artifact defines the logical roles of codegen output artifacts and
// the deterministic derivation of their default filenames.
package artifact

import (
	"path/filepath"
	"strings"
)

// Role identifies the logical function of an artifact produced by a codegen
// invocation.
type Role string

const (
	RoleVerilog         Role = "verilog"
	RoleModuleSignature Role = "module_signature"
	RoleSchedule        Role = "schedule"
	RoleVerilogLineMap  Role = "verilog_line_map"
	RoleBlockIR         Role = "block_ir"
)

// Fixed filename extensions per role. The primary role's extension depends on
// whether SystemVerilog output was requested.
const (
	ExtVerilog         = ".v"
	ExtSystemVerilog   = ".sv"
	ExtModuleSignature = ".sig.textproto"
	ExtSchedule        = ".schedule.textproto"
	ExtVerilogLineMap  = ".verilog_line_map.textproto"
	ExtBlockIR         = ".block.ir"
)

// Artifact is a (logical role, filename) pair planned as the output of a
// build action.
type Artifact struct {
	Role Role
	Path string
}

// Derive computes the default filename for the given role from a verilog
// basename. It is a pure function, total over the five known roles; unknown
// roles panic because they indicate a programmer error, not bad user input.
func Derive(basename string, role Role, systemVerilog bool) string {
	switch role {
	case RoleVerilog:
		if systemVerilog {
			return basename + ExtSystemVerilog
		}
		return basename + ExtVerilog
	case RoleModuleSignature:
		return basename + ExtModuleSignature
	case RoleSchedule:
		return basename + ExtSchedule
	case RoleVerilogLineMap:
		return basename + ExtVerilogLineMap
	case RoleBlockIR:
		return basename + ExtBlockIR
	}
	panic("artifact: unknown role " + string(role))
}

// Basename strips the primary extension from a verilog filename. "fir.sv"
// and "fir.v" both yield "fir".
func Basename(verilogFile string) string {
	return strings.TrimSuffix(verilogFile, filepath.Ext(verilogFile))
}

// StripExtension removes the role's fixed extension from a derived filename,
// recovering the basename Derive was called with.
func StripExtension(name string, role Role, systemVerilog bool) string {
	suffix := Derive("", role, systemVerilog)
	return strings.TrimSuffix(name, suffix)
}
