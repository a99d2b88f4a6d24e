package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/graph"
)

// Manifest is the JSON record of one planning run: every registered action
// with its command line, declared outputs and inputs, dependency edges, and
// any generated script. Action content is byte-deterministic for identical
// build descriptions; only the run id varies.
type Manifest struct {
	RunID   string         `json:"run_id"`
	Actions []ActionRecord `json:"actions"`
}

// ActionRecord is the serialized form of one registered action.
type ActionRecord struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Argv        []string       `json:"argv"`
	Outputs     []OutputRecord `json:"outputs"`
	Inputs      []string       `json:"inputs"`
	Deps        []string       `json:"deps,omitempty"`
	Script      *ScriptRecord  `json:"script,omitempty"`
}

// OutputRecord pairs an artifact's logical role with its path.
type OutputRecord struct {
	Role string `json:"role"`
	Path string `json:"path"`
}

// ScriptRecord embeds a generated runner script in the manifest.
type ScriptRecord struct {
	Path       string `json:"path"`
	Content    string `json:"content"`
	Executable bool   `json:"executable"`
}

// buildManifest assembles the manifest from the action graph in sorted
// action order.
func buildManifest(runID string, g *graph.Graph) (*Manifest, error) {
	m := &Manifest{RunID: runID}

	for _, act := range g.Actions() {
		deps, err := g.Dependencies(act.Name)
		if err != nil {
			return nil, err
		}

		record := ActionRecord{
			Name:        act.Name,
			Description: act.Description,
			Argv:        act.Argv,
			Inputs:      act.Inputs,
			Deps:        deps,
		}
		for _, out := range act.Outputs {
			record.Outputs = append(record.Outputs, OutputRecord{Role: string(out.Role), Path: out.Path})
		}
		if act.Script != nil {
			record.Script = &ScriptRecord{
				Path:       act.Script.Path,
				Content:    act.Script.Content,
				Executable: act.Script.Executable,
			}
		}
		m.Actions = append(m.Actions, record)
	}
	return m, nil
}

// writeManifest serializes the plan to path as indented JSON.
func (a *App) writeManifest(ctx context.Context, path, runID string, g *graph.Graph) error {
	m, err := buildManifest(runID, g)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Manifest written.", "path", path, "actions", len(m.Actions))
	return nil
}

// writeScripts materializes every generated runner script under dir, marked
// executable. It returns the number of scripts written.
func (a *App) writeScripts(ctx context.Context, dir string, g *graph.Graph) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	written := 0
	for _, act := range g.Actions() {
		if act.Script == nil {
			continue
		}
		path := filepath.Join(dir, act.Script.Path)
		mode := os.FileMode(0o644)
		if act.Script.Executable {
			mode = 0o755
		}
		if err := os.WriteFile(path, []byte(act.Script.Content), mode); err != nil {
			return written, fmt.Errorf("failed to write script %s: %w", path, err)
		}
		logger.Debug("Benchmark script written.", "path", path)
		written++
	}
	return written, nil
}
