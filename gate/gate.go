// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gate implements pass/fail checks that run at development workflow
// checkpoints, such as before a commit or after a test run.
//
// A gate reports its verdict as a single line on standard output and
// signals the result to the invoking workflow tool through the process exit
// code: zero means the gate passed, nonzero that it failed.
package gate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"go.astrophena.name/hooks/cli"
	"go.astrophena.name/hooks/logger"
	"go.astrophena.name/hooks/syncx"
)

// Stage identifies the workflow checkpoint at which a gate runs.
type Stage string

// Known stages.
const (
	StagePostTest  Stage = "post-test"
	StagePreCommit Stage = "pre-commit"
)

// Gate is a single pass/fail check.
//
// Gate implements [cli.App], so a gate can be the entire program:
//
//	func main() { cli.Main(gate.DiffRisk()) }
type Gate struct {
	// Name is the human-readable gate name. It prefixes every line the
	// gate prints.
	Name string
	// Stage is the checkpoint at which the gate runs.
	Stage Stage
	// Check produces the gate's verdict. It returns the text printed after
	// the gate name on success, or an error if the gate cannot reach a
	// verdict.
	Check func(context.Context) (string, error)
}

// Run executes the gate and prints its verdict to the environment's
// standard output.
//
// On success it prints "<name>: <verdict>" and returns nil. Any check
// error or panic is reported as "<name> error: <fault>" on standard output,
// and the returned error is silenced so that [cli.Main] exits nonzero
// without printing it again. Failures are terminal; there are no retries.
func (g *Gate) Run(ctx context.Context) (err error) {
	env := cli.GetEnv(ctx)

	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(env.Stdout, "%s error: %v\n", g.Name, p)
			err = cli.Silence(fmt.Errorf("%s: %v", g.Name, p))
		}
	}()

	logger.Debug(ctx, "gate started",
		slog.String("gate", g.Name),
		slog.String("stage", string(g.Stage)),
	)

	verdict, cerr := g.Check(ctx)
	if cerr != nil {
		fmt.Fprintf(env.Stdout, "%s error: %v\n", g.Name, cerr)
		return cli.Silence(fmt.Errorf("%s: %w", g.Name, cerr))
	}

	logger.Debug(ctx, "gate passed",
		slog.String("gate", g.Name),
		slog.String("verdict", verdict),
	)

	fmt.Fprintf(env.Stdout, "%s: %s\n", g.Name, verdict)
	return nil
}

var registry syncx.Map[string, *Gate]

// Register adds g to the gate registry. It panics if a gate with the same
// name is already registered.
func Register(g *Gate) {
	if _, loaded := registry.LoadOrStore(g.Name, g); loaded {
		panic(fmt.Sprintf("gate: duplicate registration of %q", g.Name))
	}
}

// ForStage returns all registered gates for the given stage, sorted by
// name. The order is a presentation choice only; gates are independent of
// each other.
func ForStage(stage Stage) []*Gate {
	var gates []*Gate
	registry.Range(func(_ string, g *Gate) bool {
		if g.Stage == stage {
			gates = append(gates, g)
		}
		return true
	})
	slices.SortFunc(gates, func(a, b *Gate) int {
		return strings.Compare(a.Name, b.Name)
	})
	return gates
}
