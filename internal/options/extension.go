package options

import (
	"path/filepath"

	"github.com/hdlforge/hdlforge/internal/artifact"
)

// ValidateOutputExtension checks that the primary output filename carries
// exactly the extension implied by the SystemVerilog mode. A mismatched
// extension would let a downstream consumer treat SystemVerilog as plain
// Verilog (or vice versa) without detection, so it is rejected outright.
func ValidateOutputExtension(filename string, systemVerilog bool) error {
	want := artifact.ExtVerilog
	if systemVerilog {
		want = artifact.ExtSystemVerilog
	}
	if filepath.Ext(filename) != want {
		return &BadExtensionError{Filename: filename, Want: want}
	}
	return nil
}
