// Package options validates codegen configuration mappings against the set of
// recognized option keys and supplies the default overlay applied to every
// target.
package options

import (
	"sort"
	"strconv"
)

// Recognized option keys. Membership is the only check performed here; option
// values are passed through to the codegen tool uninterpreted.
var allowedKeys = map[string]struct{}{
	// timing
	"clock_period_ps":           {},
	"pipeline_stages":           {},
	"clock_margin_percent":      {},
	"period_relaxation_percent": {},
	// reset
	"reset":              {},
	"reset_active_low":   {},
	"reset_asynchronous": {},
	"reset_data_path":    {},
	// I/O signaling
	"input_valid_signal":         {},
	"output_valid_signal":        {},
	"manual_load_enable_signal":  {},
	"flop_inputs":                {},
	"flop_outputs":               {},
	"flop_inputs_kind":           {},
	"flop_outputs_kind":          {},
	"flop_single_value_channels": {},
	"add_idle_output":            {},
	// naming
	"top":                            {},
	"module_name":                    {},
	"streaming_channel_data_suffix":  {},
	"streaming_channel_ready_suffix": {},
	"streaming_channel_valid_suffix": {},
	// formatting
	"assert_format":  {},
	"gate_format":    {},
	"smulp_format":   {},
	"umulp_format":   {},
	"separate_lines": {},
	// structural
	"generator":                   {},
	"delay_model":                 {},
	"io_constraints":              {},
	"ram_configurations":          {},
	"use_system_verilog":          {},
	"array_index_bounds_checking": {},
	"gate_recvs":                  {},
	"receives_first_sends_last":   {},
}

// Keys used by the planner itself.
const (
	KeyGenerator        = "generator"
	KeyDelayModel       = "delay_model"
	KeyUseSystemVerilog = "use_system_verilog"
	KeyTop              = "top"
	KeyModuleName       = "module_name"
	KeyPipelineStages   = "pipeline_stages"
	KeyClockPeriodPS    = "clock_period_ps"
)

// Validate checks that every key of args belongs to the recognized set. On
// the happy path the mapping is returned untouched. Keys are checked in
// sorted order so the reported offender is stable across runs.
func Validate(args map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := allowedKeys[k]; !ok {
			return nil, &UnknownOptionError{Key: k}
		}
	}
	return args, nil
}

// Defaults returns a fresh copy of the default option overlay. Callers own
// the returned map.
func Defaults() map[string]string {
	return map[string]string{
		KeyDelayModel:       "unit",
		KeyUseSystemVerilog: "true",
	}
}

// Merge overlays args onto base key-wise and returns a new map. Neither input
// is mutated.
func Merge(base, args map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(args))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range args {
		merged[k] = v
	}
	return merged
}

// SystemVerilog reports whether the merged mapping requests SystemVerilog
// output. Unparseable values fall back to the default (true) so that only the
// extension check, not a silent bool coercion, decides the outcome.
func SystemVerilog(merged map[string]string) bool {
	raw, ok := merged[KeyUseSystemVerilog]
	if !ok {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}
