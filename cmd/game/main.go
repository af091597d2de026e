package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/SnakeDuel/internal/config"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/SnakeDuel/internal/monitoring"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	ticks := flag.Int("ticks", -1, "Number of ticks to play (-1 to use config default)")
	seed := flag.Int64("seed", 0, "RNG seed (0 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error) (empty to use config default)")
	plain := flag.Bool("plain", false, "Render the board without ANSI colors")
	quiet := flag.Bool("quiet", false, "Only print the final board")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}

	if *seed != 0 {
		config.Set("game.seed", *seed)
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *ticks == -1 {
		*ticks = cfg.Demo.MaxTicks
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	gameCfg, err := game.NewGameConfigFromSettings(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game settings")
	}
	// The autopilot and the engine draw from separate streams so steering
	// does not shift the food sequence
	autopilotSeed := cfg.Game.Seed
	if gameCfg.Rng == nil {
		autopilotSeed = time.Now().UnixNano()
	}

	tickMonitor := monitoring.NewTickMonitor(log.Logger, time.Duration(cfg.Monitoring.SlowTickMs)*time.Millisecond)
	eventLogger := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetEventFilter([]string{
		events.TypeGameStarted,
		events.TypeGameEnded,
		events.TypeFoodEaten,
		events.TypeSnakeEmptied,
		events.TypeStateTransition,
	})
	gameCfg.Subscribers = []events.Subscriber{eventLogger, tickMonitor}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := game.NewEngine(ctx, gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}
	defer engine.Close()

	log.Info().
		Str("game_id", engine.GameID()).
		Int("ticks", *ticks).
		Bool("autopilot", cfg.Demo.Autopilot).
		Msg("Starting demo")

	pilot := newAutopilot(rand.New(rand.NewSource(autopilotSeed)))
	render := engine.Render
	if *plain {
		render = engine.RenderPlain
	}
	frameDelay := time.Duration(cfg.Demo.FrameDelayMs) * time.Millisecond

	if !*quiet {
		fmt.Print(render())
	}

	for i := 0; i < *ticks && !engine.IsFinished(); i++ {
		if cfg.Demo.Autopilot {
			if dir, ok := pilot.Next(engine.Board(), engine.HumanSnake()); ok {
				if err := engine.SetHumanHeading(dir); err != nil {
					log.Warn().Err(err).Msg("Autopilot heading rejected")
				}
			}
		}

		if err := engine.Step(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info().Int("tick", engine.Tick()).Msg("Interrupted")
				break
			}
			log.Fatal().Err(err).Msg("Tick failed")
		}

		if !*quiet {
			fmt.Printf("\n%s", render())
		}
		if frameDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(frameDelay):
			}
		}
	}

	if *quiet {
		fmt.Print(render())
	}
	printSummary(engine.Stats(), tickMonitor.GetMetrics())
}

func printSummary(stats game.Stats, ticks monitoring.TickMetrics) {
	fmt.Printf("\nTicks played: %d\n", stats.Ticks)
	for _, s := range []struct {
		kind  core.SnakeKind
		stats game.SnakeStats
	}{
		{core.HumanSnake, stats.Human},
		{core.ComputerSnake, stats.Computer},
	} {
		fmt.Printf("%-9s length %d (max %d), food eaten %d, blocked %d, emptied %t\n",
			s.kind, s.stats.Length, s.stats.MaxLength, s.stats.FoodEaten, s.stats.BlockedMoves, s.stats.Emptied)
	}
	fmt.Printf("Food spawned: %d\n", stats.FoodSpawned)
	fmt.Printf("Tick time: mean %s, peak %s, slow %d\n", ticks.Mean, ticks.Peak, ticks.SlowTicks)
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// The board goes to stdout, logs to stderr
	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
