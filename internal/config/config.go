package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/SnakeDuel/internal/game/core"
	"github.com/mitchelldurbincs/SnakeDuel/internal/game/mapgen"
)

// Config holds all configuration for the application
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Demo       DemoConfig       `mapstructure:"demo"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	UI         UIConfig         `mapstructure:"ui"`
	Colors     ColorsConfig     `mapstructure:"colors"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Board           BoardConfig `mapstructure:"board"`
	GrowthPerFood   int         `mapstructure:"growth_per_food"`
	FoodProbability float64     `mapstructure:"food_probability"`
	InitialGrowth   int         `mapstructure:"initial_growth"`
	InitialFood     int         `mapstructure:"initial_food"`
	Seed            int64       `mapstructure:"seed"`
	Human           StartConfig `mapstructure:"human"`
	Computer        StartConfig `mapstructure:"computer"`
}

// BoardConfig holds the grid dimensions
type BoardConfig struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

// StartConfig places one snake. Row or Col of -1 selects the default layout.
type StartConfig struct {
	Row     int    `mapstructure:"row"`
	Col     int    `mapstructure:"col"`
	Heading string `mapstructure:"heading"`
}

// UsesDefaultLayout reports whether the start cell is left to the layout
func (s StartConfig) UsesDefaultLayout() bool {
	return s.Row < 0 || s.Col < 0
}

// DemoConfig holds headless demo settings
type DemoConfig struct {
	MaxTicks     int  `mapstructure:"max_ticks"`
	FrameDelayMs int  `mapstructure:"frame_delay_ms"`
	Autopilot    bool `mapstructure:"autopilot"`
}

// LoggingConfig holds logger settings shared by the binaries
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MonitoringConfig holds tick monitoring settings
type MonitoringConfig struct {
	SlowTickMs int `mapstructure:"slow_tick_ms"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Game   UIGameConfig `mapstructure:"game"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// UIGameConfig holds UI game settings
type UIGameConfig struct {
	TileSize int `mapstructure:"tile_size"`
	// TickInterval is the number of frames between engine ticks
	TickInterval int `mapstructure:"tick_interval"`
}

// ColorsConfig holds the UI palette as RGB triples
type ColorsConfig struct {
	Background [3]int `mapstructure:"background"`
	GridLines  [3]int `mapstructure:"grid_lines"`
	Food       [3]int `mapstructure:"food"`
	Human      [3]int `mapstructure:"human"`
	Computer   [3]int `mapstructure:"computer"`
	Text       [3]int `mapstructure:"text"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.board.rows", 20)
	v.SetDefault("game.board.cols", 30)
	v.SetDefault("game.growth_per_food", 3)
	v.SetDefault("game.food_probability", 0.1)
	v.SetDefault("game.initial_growth", 2)
	v.SetDefault("game.initial_food", 3)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.human.row", -1)
	v.SetDefault("game.human.col", -1)
	v.SetDefault("game.human.heading", "east")
	v.SetDefault("game.computer.row", -1)
	v.SetDefault("game.computer.col", -1)
	v.SetDefault("game.computer.heading", "west")

	// Demo defaults
	v.SetDefault("demo.max_ticks", 200)
	v.SetDefault("demo.frame_delay_ms", 100)
	v.SetDefault("demo.autopilot", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Monitoring defaults
	v.SetDefault("monitoring.slow_tick_ms", 5)

	// UI defaults
	v.SetDefault("ui.window.width", 960)
	v.SetDefault("ui.window.height", 680)
	v.SetDefault("ui.window.title", "Snake Duel")
	v.SetDefault("ui.game.tile_size", 24)
	v.SetDefault("ui.game.tick_interval", 8)

	// Color defaults
	v.SetDefault("colors.background", []int{15, 15, 20})
	v.SetDefault("colors.grid_lines", []int{40, 40, 48})
	v.SetDefault("colors.food", []int{230, 190, 40})
	v.SetDefault("colors.human", []int{60, 180, 75})
	v.SetDefault("colors.computer", []int{200, 60, 60})
	v.SetDefault("colors.text", []int{235, 235, 235})
}

// Init initializes the configuration
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/snakeduel")
	}

	// SNAKE_GAME_BOARD_ROWS overrides game.board.rows
	v.SetEnvPrefix("SNAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file in the default locations - use defaults
		case configPath != "" && errors.Is(err, os.ErrNotExist):
			// Specific file requested but not found - use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg = loaded
	return nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
// over the loaded configuration. A missing overlay file is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(merged); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = merged
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	updated := &Config{}
	if err := v.Unmarshal(updated); err == nil {
		cfg = updated
	}
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Invalid edits are
// ignored and the previous configuration stays active.
func WatchConfig(onChange func()) {
	watched := GetViper()
	watched.OnConfigChange(func(e fsnotify.Event) {
		reloaded := &Config{}
		if err := watched.Unmarshal(reloaded); err != nil || Validate(reloaded) != nil {
			return
		}
		mu.Lock()
		cfg = reloaded
		mu.Unlock()
		if onChange != nil {
			onChange()
		}
	})
	watched.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Game mechanics
	if c.Game.Board.Rows <= 0 || c.Game.Board.Cols <= 0 {
		return fmt.Errorf("game.board dimensions must be positive")
	}
	if c.Game.Board.Rows*c.Game.Board.Cols < 2 {
		return fmt.Errorf("game.board must have room for two snakes")
	}
	if c.Game.GrowthPerFood < 0 {
		return fmt.Errorf("game.growth_per_food must be non-negative")
	}
	// Written so that NaN fails too
	if !(c.Game.FoodProbability >= 0 && c.Game.FoodProbability <= 1) {
		return fmt.Errorf("game.food_probability must be between 0 and 1")
	}
	if c.Game.InitialGrowth < 0 {
		return fmt.Errorf("game.initial_growth must be non-negative")
	}
	if c.Game.InitialFood < 0 {
		return fmt.Errorf("game.initial_food must be non-negative")
	}
	if err := validateStart(c.Game.Human, "game.human", c.Game.Board); err != nil {
		return err
	}
	if err := validateStart(c.Game.Computer, "game.computer", c.Game.Board); err != nil {
		return err
	}
	if human, computer := resolveStarts(c.Game); human == computer {
		return fmt.Errorf("game.human and game.computer must start on different cells, both resolve to %s", human)
	}

	// Demo and monitoring
	if c.Demo.MaxTicks < 0 {
		return fmt.Errorf("demo.max_ticks must be non-negative")
	}
	if c.Demo.FrameDelayMs < 0 {
		return fmt.Errorf("demo.frame_delay_ms must be non-negative")
	}
	if c.Monitoring.SlowTickMs <= 0 {
		return fmt.Errorf("monitoring.slow_tick_ms must be positive")
	}

	// Logging
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	// UI
	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Game.TileSize <= 0 {
		return fmt.Errorf("ui.game.tile_size must be positive")
	}
	if c.UI.Game.TickInterval <= 0 {
		return fmt.Errorf("ui.game.tick_interval must be positive")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	colors := []struct {
		rgb  [3]int
		name string
	}{
		{c.Colors.Background, "colors.background"},
		{c.Colors.GridLines, "colors.grid_lines"},
		{c.Colors.Food, "colors.food"},
		{c.Colors.Human, "colors.human"},
		{c.Colors.Computer, "colors.computer"},
		{c.Colors.Text, "colors.text"},
	}
	for _, col := range colors {
		if err := validateRGB(col.rgb, col.name); err != nil {
			return err
		}
	}

	return nil
}

// resolveStarts returns the cells the engine will place the snakes on,
// filling unset starts from the default layout
func resolveStarts(g GameConfig) (human, computer core.Coordinate) {
	layout := mapgen.DefaultLayout(g.Board.Rows, g.Board.Cols)
	human, computer = layout.HumanStart, layout.ComputerStart
	if !g.Human.UsesDefaultLayout() {
		human = core.NewCoordinate(g.Human.Row, g.Human.Col)
	}
	if !g.Computer.UsesDefaultLayout() {
		computer = core.NewCoordinate(g.Computer.Row, g.Computer.Col)
	}
	return human, computer
}

func validateStart(s StartConfig, prefix string, board BoardConfig) error {
	if _, err := core.ParseDirection(s.Heading); err != nil {
		return fmt.Errorf("%s.heading: %w", prefix, err)
	}
	if s.UsesDefaultLayout() {
		return nil
	}
	if s.Row >= board.Rows || s.Col >= board.Cols {
		return fmt.Errorf("%s start (%d,%d) is outside the %dx%d board", prefix, s.Row, s.Col, board.Rows, board.Cols)
	}
	return nil
}
