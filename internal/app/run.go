package app

import (
	"context"
	"fmt"

	"github.com/vk/strgraphgo/internal/compiled"
	"github.com/vk/strgraphgo/internal/ctxlog"
)

// Run executes the main application logic: load the description, compile
// it, compute the target, and print the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.OpsPort > 0 {
		a.startOpsServer(ctx, a.config.OpsPort)
	}

	desc, err := a.loadDescription(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph description: %w", err)
	}
	a.logger.Debug("Graph description loaded.", "nodes", len(desc.Nodes))

	target := a.config.Target
	if target == "" {
		target = desc.TargetNode
	}
	if target == "" {
		return fmt.Errorf("no target node: pass --target or set target_node in the description")
	}

	cg, err := compiled.New(ctx, desc, a.registry)
	if err != nil {
		return fmt.Errorf("failed to compile graph: %w", err)
	}
	a.logger.Info("🚀 Computing target.", "target", target, "strategy", a.config.Strategy, "nodes", cg.Graph().Len())

	value, err := a.compute(ctx, cg, target)
	if err != nil {
		return fmt.Errorf("computation failed: %w", err)
	}
	a.logger.Info("🏁 Computation finished.")

	fmt.Fprintln(a.outW, value)
	return nil
}

// compute dispatches on the configured strategy.
func (a *App) compute(ctx context.Context, cg *compiled.CompiledGraph, target string) (string, error) {
	exec := cg.Executor()
	switch a.config.Strategy {
	case "recursive":
		return exec.Compute(ctx, target, a.config.Feed)
	case "iterative":
		return exec.ComputeIterative(ctx, target, a.config.Feed)
	case "parallel":
		return exec.ComputeParallel(ctx, target, a.config.Feed)
	default:
		return exec.ComputeAuto(ctx, target, a.config.Feed)
	}
}
