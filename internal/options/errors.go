package options

import "fmt"

// UnknownOptionError reports a configuration key outside the recognized set.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown codegen option %q", e.Key)
}

// BadExtensionError reports a primary output filename whose extension does
// not match the requested Verilog/SystemVerilog mode.
type BadExtensionError struct {
	Filename string
	Want     string
}

func (e *BadExtensionError) Error() string {
	return fmt.Sprintf("output filename %q must use the %s extension", e.Filename, e.Want)
}
