// Package action models a single declarative unit of work handed to an
// external build orchestrator: a command, its declared outputs, and its
// declared inputs. The planner registers actions; it never executes them.
package action

import "github.com/hdlforge/hdlforge/internal/artifact"

// Action is one registered external-tool invocation.
type Action struct {
	// Name uniquely identifies the action inside a plan.
	Name string
	// Description is a human-readable progress label.
	Description string
	// Argv is the fully serialized command line.
	Argv []string
	// Outputs are the artifacts this action declares it will produce.
	Outputs []artifact.Artifact
	// Inputs are the paths this action consumes, including tool runfiles.
	Inputs []string
	// Script is set when the action's output is a generated runner script
	// rather than a direct tool invocation.
	Script *Script
}

// Script is a generated shell script artifact emitted by an action.
type Script struct {
	Path       string
	Content    string
	Executable bool
}
