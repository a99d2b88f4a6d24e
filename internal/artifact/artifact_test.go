package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name          string
		role          Role
		systemVerilog bool
		want          string
	}{
		{"verilog plain", RoleVerilog, false, "fir.v"},
		{"verilog system", RoleVerilog, true, "fir.sv"},
		{"module signature", RoleModuleSignature, true, "fir.sig.textproto"},
		{"schedule", RoleSchedule, true, "fir.schedule.textproto"},
		{"verilog line map", RoleVerilogLineMap, true, "fir.verilog_line_map.textproto"},
		{"block ir", RoleBlockIR, true, "fir.block.ir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive("fir", tt.role, tt.systemVerilog))
		})
	}
}

func TestDerive_UnknownRolePanics(t *testing.T) {
	assert.Panics(t, func() {
		Derive("fir", Role("netlist"), false)
	})
}

func TestDerive_RoundTrip(t *testing.T) {
	roles := []Role{RoleVerilog, RoleModuleSignature, RoleSchedule, RoleVerilogLineMap, RoleBlockIR}
	for _, role := range roles {
		for _, sv := range []bool{false, true} {
			derived := Derive("adder_8x8", role, sv)
			assert.Equal(t, "adder_8x8", StripExtension(derived, role, sv),
				"role %s (system_verilog=%v) did not round-trip", role, sv)
		}
	}
}

func TestBasename(t *testing.T) {
	assert.Equal(t, "a", Basename("a.sv"))
	assert.Equal(t, "b", Basename("b.v"))
	assert.Equal(t, "sub/fir", Basename("sub/fir.sv"))
	assert.Equal(t, "noext", Basename("noext"))
}
