package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hdlforge/hdlforge/internal/artifact"
	"github.com/hdlforge/hdlforge/internal/benchmark"
	"github.com/hdlforge/hdlforge/internal/codegen"
	"github.com/hdlforge/hdlforge/internal/ctxlog"
	"github.com/hdlforge/hdlforge/internal/graph"
	"github.com/hdlforge/hdlforge/internal/toolchain"
)

// Run plans every declared target, constructs the build actions, and emits
// the plan. Identical build descriptions always produce identical action
// graphs; only the run id differs between invocations.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	runID := uuid.NewString()
	a.logger.Debug("App.Run started.", "run_id", runID)

	tc, err := toolchain.Resolve(ctx, a.model.Toolchain.CodegenTool, a.model.Toolchain.BenchmarkTool)
	if err != nil {
		return err
	}

	g, err := a.plan(ctx, tc)
	if err != nil {
		return err
	}
	a.logger.Info("Planning complete.", "run_id", runID, "actions", g.Len())

	for _, act := range g.Actions() {
		a.printer.Action(act)
	}

	if appConfig.OutPath != "" {
		if err := a.writeManifest(ctx, appConfig.OutPath, runID, g); err != nil {
			return err
		}
		a.printer.Step("Wrote manifest to %s", appConfig.OutPath)
	}
	if appConfig.ScriptsDir != "" {
		n, err := a.writeScripts(ctx, appConfig.ScriptsDir, g)
		if err != nil {
			return err
		}
		a.printer.Step("Wrote %d benchmark script(s) to %s", n, appConfig.ScriptsDir)
	}

	a.printer.Success("Planned %d action(s)", g.Len())
	a.logger.Debug("App.Run finished.", "run_id", runID)
	return nil
}

// plan constructs the full action graph from the loaded model: one codegen
// action per codegen target, one benchmark action per benchmark target, with
// benchmark-to-codegen dependency edges.
func (a *App) plan(ctx context.Context, tc *toolchain.Toolchain) (*graph.Graph, error) {
	g := graph.New()
	infos := make(map[string]*codegen.Info, len(a.model.Codegens))

	for _, name := range a.model.CodegenNames() {
		target := a.model.Codegens[name]

		plan, err := codegen.NewPlan(ctx, target.Args, target.VerilogFile, codegen.Overrides{
			ModuleSignature: target.ModuleSigFile,
			Schedule:        target.ScheduleFile,
			VerilogLineMap:  target.VerilogLineMapFile,
			BlockIR:         target.BlockIRFile,
		})
		if err != nil {
			return nil, fmt.Errorf("codegen target %q: %w", name, err)
		}

		act, err := codegen.Construct(ctx, name, plan, tc.Codegen, target.Src)
		if err != nil {
			return nil, err
		}
		if err := g.Register(act); err != nil {
			return nil, err
		}
		infos[name] = codegen.PackageInfo(name, plan)
	}

	for _, name := range a.model.BenchmarkNames() {
		target := a.model.Benchmarks[name]
		info := infos[target.Codegen]

		optIR := &benchmark.OptIRInfo{
			Target: target.Codegen,
			OptIR:  artifact.Artifact{Role: benchmark.RoleOptIR, Path: target.OptIR},
		}
		act, err := benchmark.Build(ctx, name, info, optIR, tc.Benchmark)
		if err != nil {
			return nil, err
		}
		if err := g.Register(act); err != nil {
			return nil, err
		}
		if err := g.AddEdge(target.Codegen, name); err != nil {
			return nil, err
		}
	}

	if err := g.DetectCycles(); err != nil {
		return nil, fmt.Errorf("error validating action graph: %w", err)
	}
	return g, nil
}
