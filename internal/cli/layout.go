package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/forcelayout/pkg/config"
	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

// layoutFlags mirrors the tunable config keys. Only flags the user set
// override the loaded config.
type layoutFlags struct {
	output      string
	stiffness   float64
	charge      float64
	threshold   float64
	stepDelayMs int
	maxSteps    int
	workers     int
	width       float64
	height      float64
	seed        uint64
}

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	defaults := config.Default()
	flags := layoutFlags{
		stiffness:   defaults.Simulation.Stiffness,
		charge:      defaults.Simulation.Charge,
		threshold:   defaults.Simulation.MinMovement,
		stepDelayMs: defaults.Simulation.StepDelayMs,
		maxSteps:    defaults.Simulation.MaxSteps,
		workers:     defaults.Simulation.Workers,
		width:       defaults.Layout.Width,
		height:      defaults.Layout.Height,
		seed:        defaults.Layout.Seed,
	}

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph.

The layout command reads a graph.json file, places every node without a
starting position at a random point inside the frame, and steps the force
simulation until the total movement of a step falls to the threshold.
The output is a layout.json file that can be drawn with 'render'.

Parameters come from the config file and FORCELAYOUT_* environment
variables; flags override both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), cfg)
			if errs := cfg.Validate(); len(errs) > 0 {
				return config.ValidationErrors(errs).AsError()
			}
			return c.runLayout(cmd.Context(), args[0], flags.output, cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().Float64Var(&flags.stiffness, "stiffness", flags.stiffness, "spring stiffness toward the center")
	cmd.Flags().Float64Var(&flags.charge, "charge", flags.charge, "node charge (repulsion strength is charge³)")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", flags.threshold, "stop when total movement per step is at most this")
	cmd.Flags().IntVar(&flags.stepDelayMs, "step-delay", flags.stepDelayMs, "pause between steps in milliseconds (negative: none)")
	cmd.Flags().IntVar(&flags.maxSteps, "max-steps", flags.maxSteps, "maximum number of steps")
	cmd.Flags().IntVar(&flags.workers, "workers", flags.workers, "concurrent node computations (0: one goroutine per node)")
	cmd.Flags().Float64Var(&flags.width, "width", flags.width, "frame width")
	cmd.Flags().Float64Var(&flags.height, "height", flags.height, "frame height")
	cmd.Flags().Uint64Var(&flags.seed, "seed", flags.seed, "random seed for initial placement")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (f *layoutFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("stiffness", func() { cfg.Simulation.Stiffness = f.stiffness })
	set("charge", func() { cfg.Simulation.Charge = f.charge })
	set("threshold", func() { cfg.Simulation.MinMovement = f.threshold })
	set("step-delay", func() { cfg.Simulation.StepDelayMs = f.stepDelayMs })
	set("max-steps", func() { cfg.Simulation.MaxSteps = f.maxSteps })
	set("workers", func() { cfg.Simulation.Workers = f.workers })
	set("width", func() { cfg.Layout.Width = f.width })
	set("height", func() { cfg.Layout.Height = f.height })
	set("seed", func() { cfg.Layout.Seed = f.seed })
}

// runLayout loads the graph, runs the simulation, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output string, cfg *config.Config) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	opts := cfg.PipelineOptions()
	opts.Logger = c.Logger
	runner := c.newRunner()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d nodes...", len(g.Nodes)))
	spinner.Start()

	result, err := runner.Run(ctx, g.Elements(), opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutput(input, ".layout.json")
	}

	layout := graph.NewLayout(g, result, pipeline.Bounds{Width: opts.Width, Height: opts.Height})
	if err := graph.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	if result.Converged {
		printSuccess("Layout complete")
	} else {
		printWarning("Layout stopped after %d steps without converging", result.Steps)
	}
	printFile(outputPath)
	printStats(len(g.Nodes), len(g.Edges), result.Steps, result.Converged)
	printDetail("final movement %.3f, took %s", result.Movement, result.Stats.Duration.Round(time.Millisecond))
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}

// defaultOutput replaces the extension of input with suffix. A trailing
// ".layout" is dropped first so graph.layout.json renders to graph.svg.
func defaultOutput(input, suffix string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	base = strings.TrimSuffix(base, ".layout")
	return base + suffix
}
