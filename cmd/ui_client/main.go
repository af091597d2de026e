package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/SnakeDuel/internal/config"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/SnakeDuel/internal/monitoring"
	"github.com/mitchelldurbincs/SnakeDuel/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (empty to use config default)")
	watch := flag.Bool("watch", true, "Reload the config file when it changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	gameCfg, err := game.NewGameConfigFromSettings(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid game settings")
	}
	gameCfg.Subscribers = []events.Subscriber{
		subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel),
		monitoring.NewTickMonitor(log.Logger, time.Duration(cfg.Monitoring.SlowTickMs)*time.Millisecond),
	}

	gameEngine, err := game.NewEngine(context.Background(), gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}
	defer gameEngine.Close()

	uiGame, err := ui.NewUIGame(gameEngine, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create UI")
	}

	// Tick interval, window size and colours are read from the live config
	if *watch && config.ConfigFilePath() != "" {
		config.WatchConfig(func() {
			log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded")
			uiGame.ReloadPalette()
		})
	}

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI exited with error")
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})
}
