// Command starlight runs a small swarm simulation, either in a window or headless.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/plus3/starlight/app"
	"github.com/plus3/starlight/config"
	"github.com/plus3/starlight/ecs/debugui"
	debugui_ebiten "github.com/plus3/starlight/ecs/debugui/ebiten"
	"github.com/plus3/starlight/log"
	"github.com/plus3/starlight/platform"
	platform_ebiten "github.com/plus3/starlight/platform/ebiten"
	"github.com/plus3/starlight/system"
	"github.com/plus3/starlight/telemetry"
)

func main() {
	code, err := newRootCmd().execute()
	if err != nil {
		log.Default().Error("starlight failed", log.Error(err))
		if code == 0 {
			code = 1
		}
	}
	_ = log.Default().Sync()
	os.Exit(code)
}

type rootCmd struct {
	*cobra.Command

	configPath string
	logLevel   string
	exitCode   int
}

func newRootCmd() *rootCmd {
	root := &rootCmd{}
	root.Command = &cobra.Command{
		Use:           "starlight",
		Short:         "Swarm simulation built on the starlight entity store",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&root.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&root.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(root.runCmd(), root.simulateCmd())
	return root
}

func (r *rootCmd) execute() (int, error) {
	err := r.Execute()
	return r.exitCode, err
}

// setup loads the config, installs the logger and builds the application.
func (r *rootCmd) setup() (*app.Application, config.Config, *telemetry.Recorder, error) {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return nil, cfg, nil, err
	}
	if r.logLevel != "" {
		cfg.Log.Level = r.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, cfg, nil, err
		}
	}

	logger := log.New(cfg.LogLevel())
	log.SetDefault(logger)

	recorder, err := telemetry.New("starlight", telemetry.DefaultInterval, telemetry.DefaultRetain)
	if err != nil {
		return nil, cfg, nil, err
	}

	clock := app.NewTime(nil)
	clock.SetTargetFrameTime(cfg.Frame.TargetFrameTime)
	clock.SetMaximumDeltaTime(cfg.Frame.MaximumDeltaTime)

	application := app.New(
		app.WithLogger(logger.Named("app")),
		app.WithTelemetry(recorder),
		app.WithTime(clock),
	)

	bounds := Bounds{Width: float32(cfg.Window.Width), Height: float32(cfg.Window.Height)}
	if err := installSimulation(application, bounds, defaultSpawner()); err != nil {
		return nil, cfg, nil, eris.Wrap(err, "install simulation")
	}
	return application, cfg, recorder, nil
}

func defaultSpawner() Spawner {
	return Spawner{
		Interval: 20 * time.Millisecond,
		Lifetime: 8 * time.Second,
		Limit:    400,
		Speed:    120,
	}
}

func (r *rootCmd) runCmd() *cobra.Command {
	var overlay bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window and run the simulation until it is closed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, cfg, _, err := r.setup()
			if err != nil {
				return err
			}

			store := application.Store()
			window := platform.CreateWindow(store, cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
			attachControls(application, window)

			opts := []platform_ebiten.Option{platform_ebiten.WithDraw(newRenderer(store))}
			if overlay || cfg.Debug.Overlay {
				if _, err := debugui.Install(application); err != nil {
					return err
				}
				backend := debugui_ebiten.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
				opts = append(opts, platform_ebiten.WithOverlay(backend))
			}

			r.exitCode, err = platform_ebiten.Run(application, opts...)
			return err
		},
	}
	cmd.Flags().BoolVar(&overlay, "overlay", false, "show the debug inspector overlay")
	return cmd
}

func (r *rootCmd) simulateCmd() *cobra.Command {
	var frames uint64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation headless for a number of frames",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, _, recorder, err := r.setup()
			if err != nil {
				return err
			}
			if frames > 0 {
				limit := &FrameLimit{frames: frames, app: application}
				if _, err := system.CreateSystem(application.Systems(), limit, system.After[Simulation]()); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			r.exitCode = simulate(ctx, application)
			summarize(application.Logger(), recorder)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&frames, "frames", 600, "number of frames to run, 0 runs until interrupted")
	return cmd
}

func simulate(ctx context.Context, application *app.Application) int {
	return application.Run(ctx, &platform.Queue{})
}

func summarize(logger *log.Logger, recorder *telemetry.Recorder) {
	count, mean := recorder.Sample("starlight.frame.update")
	entities, _ := recorder.Gauge("starlight.entities")
	logger.Info("simulation finished",
		log.Int("frames", recorder.Counter("starlight.frame.count")),
		log.Int("update_samples", count),
		log.Float64("update_mean_ms", mean),
		log.Float64("entities", float64(entities)),
	)
}
