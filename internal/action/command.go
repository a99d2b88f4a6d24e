package action

import (
	"fmt"
	"sort"
	"strings"
)

// Command accumulates an external-tool invocation as typed pieces and
// serializes it once. Positional arguments keep insertion order; flag order
// is whatever the caller chose when adding, so callers that need determinism
// add flags in sorted order (AddFlagMap does this).
type Command struct {
	tool        string
	positionals []string
	flags       []flag
}

type flag struct {
	key   string
	value string
}

// NewCommand starts a command for the given tool path.
func NewCommand(tool string) *Command {
	return &Command{tool: tool}
}

// AddPositional appends a positional argument.
func (c *Command) AddPositional(arg string) *Command {
	c.positionals = append(c.positionals, arg)
	return c
}

// AddFlag appends a single --key=value flag.
func (c *Command) AddFlag(key, value string) *Command {
	c.flags = append(c.flags, flag{key: key, value: value})
	return c
}

// AddFlagMap appends one --key=value flag per map entry in sorted key order,
// keeping the serialized command stable for identical inputs.
func (c *Command) AddFlagMap(m map[string]string) *Command {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.AddFlag(k, m[k])
	}
	return c
}

// Argv serializes the command into an argument vector: tool, positionals,
// then flags in the order they were added.
func (c *Command) Argv() []string {
	argv := make([]string, 0, 1+len(c.positionals)+len(c.flags))
	argv = append(argv, c.tool)
	argv = append(argv, c.positionals...)
	for _, f := range c.flags {
		argv = append(argv, fmt.Sprintf("--%s=%s", f.key, f.value))
	}
	return argv
}

// String renders the command as a single shell line.
func (c *Command) String() string {
	return strings.Join(c.Argv(), " ")
}
