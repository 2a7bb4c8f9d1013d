// Command starlight-stress measures frame cost with many entities and systems.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/system"
)

type options struct {
	duration       time.Duration
	entities       int
	systems        int
	churn          int
	seed           uint64
	gcPauseMetrics bool
	verbose        bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "starlight-stress",
		Short:         "Run a timed entity store stress test and print a report",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.systems < 0 || opts.systems > len(systemFactories) {
				return eris.Errorf("systems must be between 0 and %d", len(systemFactories))
			}
			level := log.LevelInfo
			if opts.verbose {
				level = log.LevelDebug
			}
			log.SetDefault(log.New(level))
			defer func() { _ = log.Default().Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.duration)
			defer cancel()

			report := run(ctx, opts)
			fmt.Fprintln(cmd.OutOrStdout(), "\n--- Stress Test Report ---")
			if err := report.Generate(cmd.OutOrStdout()); err != nil {
				return eris.Wrap(err, "generate report")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "--- End of Report ---")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&opts.duration, "duration", 10*time.Second, "the total duration the test should run for")
	flags.IntVar(&opts.entities, "entities", 10000, "the initial number of entities to create")
	flags.IntVar(&opts.systems, "systems", len(systemFactories), "the number of systems to register")
	flags.IntVar(&opts.churn, "churn", 100, "entities destroyed and respawned every frame")
	flags.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flags.BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", false, "enable detailed GC pause metrics in the report")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

// Batch holds the second half of the churn systems to exercise nested groups.
type Batch struct {
	system.Group
}

// Churner destroys and respawns entities through the command buffer.
type Churner struct {
	count int
	rng   *rand.Rand
	live  []ecs.Entity
}

func (c *Churner) Update(store *ecs.Store) {
	commands := store.Commands()
	for range min(c.count, len(c.live)) {
		i := c.rng.IntN(len(c.live))
		commands.Destroy(c.live[i])
		c.live[i] = c.live[len(c.live)-1]
		c.live = c.live[:len(c.live)-1]

		commands.Create(func(store *ecs.Store, e ecs.Entity) {
			for _, idx := range c.rng.Perm(componentCount)[:c.rng.IntN(5)+1] {
				addComponent(store, e, idx, c.rng.Float64())
			}
			c.live = append(c.live, e)
		})
	}
}

func setup(opts options) (*app.Application, error) {
	logger := log.Default().Named("stress")
	application := app.New(app.WithLogger(logger))
	store := application.Store()
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))

	logger.Info("populating store", log.Int("entities", opts.entities))
	churner := &Churner{count: opts.churn, rng: rng, live: make([]ecs.Entity, 0, opts.entities)}
	for range opts.entities {
		churner.live = append(churner.live, spawnRandomEntity(store, rng, rng.IntN(5)+1))
	}

	systems := application.Systems()
	if _, err := system.CreateSystem(systems, &Batch{}); err != nil {
		return nil, err
	}
	for i, factory := range systemFactories[:opts.systems] {
		var traits []system.Option
		if i >= opts.systems/2 {
			traits = append(traits, system.In[Batch]())
		}
		if err := systems.Insert(factory(), system.NewTraits(traits...)); err != nil {
			return nil, err
		}
	}
	if _, err := system.CreateSystem(systems, churner, system.After[Batch]()); err != nil {
		return nil, err
	}
	return application, nil
}

func run(ctx context.Context, opts options) *Report {
	report := &Report{
		Duration:       opts.duration,
		Entities:       opts.entities,
		Components:     componentCount,
		Systems:        opts.systems,
		Churn:          opts.churn,
		GCPauseMetrics: opts.gcPauseMetrics,
	}

	application, err := setup(opts)
	if err != nil {
		report.Err = err
		return report
	}
	logger := application.Logger()

	runtime.ReadMemStats(&report.MemStatsStart)
	logger.Info("running simulation", log.Duration("duration", opts.duration))

	startTime := time.Now()
	lastFrameTime := startTime
	for ctx.Err() == nil {
		delta := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		application.Update(delta)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(len(report.UpdateTime.Samples))
	report.UpdateTime.Finalize()
	report.FinalEntities = application.Store().Len()
	runtime.ReadMemStats(&report.MemStatsEnd)

	application.Systems().Walk(func(_ system.System, stats system.SystemStats, depth int) {
		report.SystemStats = append(report.SystemStats, SystemLine{Depth: depth, Stats: stats})
	})

	logger.Info("simulation finished", log.Int64("updates", report.TotalUpdates))
	return report
}
