package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Board       BoardConfig       `mapstructure:"board"`
	Generation  GenerationConfig  `mapstructure:"generation"`
	Play        PlayConfig        `mapstructure:"play"`
	UI          UIConfig          `mapstructure:"ui"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// BoardConfig holds board dimensions and timings. Times are in milliseconds.
type BoardConfig struct {
	Columns        int `mapstructure:"columns"`
	VisibleRows    int `mapstructure:"visible_rows"`
	ProgressTime   int `mapstructure:"progress_time"`
	TransitionTime int `mapstructure:"transition_time"`
	FrontlineStart int `mapstructure:"frontline_start"`
	FrameDelay     int `mapstructure:"frame_delay"`
}

// GenerationConfig holds row generation settings
type GenerationConfig struct {
	// Seed of 0 picks a time-based seed
	Seed           int64          `mapstructure:"seed"`
	TerrainWeights map[string]int `mapstructure:"terrain_weights"`
	SpawnWeights   map[string]int `mapstructure:"spawn_weights"`
	SafeRows       int            `mapstructure:"safe_rows"`
}

// PlayConfig holds the AP economy and frontline tuning
type PlayConfig struct {
	MaxAP               int     `mapstructure:"max_ap"`
	StartAP             int     `mapstructure:"start_ap"`
	APRegenPerSecond    float64 `mapstructure:"ap_regen_per_second"`
	KillBonus           int     `mapstructure:"kill_bonus"`
	DefaultUnit         string  `mapstructure:"default_unit"`
	BreachFrontlineStep int     `mapstructure:"breach_frontline_step"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window    WindowConfig `mapstructure:"window"`
	LevelFile string       `mapstructure:"level_file"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// LoggingConfig selects the root logger's level and output format
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging  bool `mapstructure:"verbose_logging"`
	ShowCoordinates bool `mapstructure:"show_coordinates"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("board.columns", 20)
	v.SetDefault("board.visible_rows", 20)
	v.SetDefault("board.progress_time", 5000)
	v.SetDefault("board.transition_time", 500)
	v.SetDefault("board.frontline_start", 15)
	v.SetDefault("board.frame_delay", 100)

	v.SetDefault("generation.seed", 0)
	v.SetDefault("generation.terrain_weights.ground", 95)
	v.SetDefault("generation.terrain_weights.mountain", 5)
	v.SetDefault("generation.spawn_weights.none", 92)
	v.SetDefault("generation.spawn_weights.infantry", 4)
	v.SetDefault("generation.spawn_weights.tank", 2)
	v.SetDefault("generation.spawn_weights.artillery", 1)
	v.SetDefault("generation.spawn_weights.bomber", 1)
	v.SetDefault("generation.safe_rows", 16)

	v.SetDefault("play.max_ap", 100)
	v.SetDefault("play.start_ap", 50)
	v.SetDefault("play.ap_regen_per_second", 5.0)
	v.SetDefault("play.kill_bonus", 5)
	v.SetDefault("play.default_unit", "infantry")
	v.SetDefault("play.breach_frontline_step", 1)

	v.SetDefault("ui.window.width", 600)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Frontline")
	v.SetDefault("ui.level_file", "level.yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_coordinates", false)
}

// Init initializes the configuration. A .env file in the working directory,
// if present, is loaded into the environment first so TD_ overrides can live
// there.
func Init(configPath string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/frontline")
	}

	v.SetEnvPrefix("TD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !configNotFound(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// configNotFound reports whether err means there was no config file to read,
// in which case the defaults apply.
func configNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil && !configNotFound(err) {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Reloads that fail
// validation are dropped and the previous values kept.
func WatchConfig(onChange func()) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			return
		}
		if err := Validate(next); err != nil {
			return
		}
		*cfg = *next
		if onChange != nil {
			onChange()
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	b := c.Board
	if b.Columns <= 0 || b.VisibleRows <= 0 {
		return fmt.Errorf("board dimensions must be positive")
	}
	if b.ProgressTime <= 0 || b.TransitionTime <= 0 {
		return fmt.Errorf("board.progress_time and board.transition_time must be positive")
	}
	if b.FrontlineStart < 0 || b.FrontlineStart >= b.VisibleRows {
		return fmt.Errorf("board.frontline_start must be within the visible rows")
	}
	if b.FrameDelay < 0 {
		return fmt.Errorf("board.frame_delay must be non-negative")
	}

	if err := validateWeights(c.Generation.TerrainWeights, "generation.terrain_weights"); err != nil {
		return err
	}
	if err := validateWeights(c.Generation.SpawnWeights, "generation.spawn_weights"); err != nil {
		return err
	}
	if c.Generation.SafeRows < 0 {
		return fmt.Errorf("generation.safe_rows must be non-negative")
	}

	p := c.Play
	if p.MaxAP <= 0 {
		return fmt.Errorf("play.max_ap must be positive")
	}
	if p.StartAP < 0 || p.StartAP > p.MaxAP {
		return fmt.Errorf("play.start_ap must be between 0 and play.max_ap")
	}
	if p.APRegenPerSecond < 0 {
		return fmt.Errorf("play.ap_regen_per_second must be non-negative")
	}
	if p.KillBonus < 0 {
		return fmt.Errorf("play.kill_bonus must be non-negative")
	}
	if p.BreachFrontlineStep < 0 {
		return fmt.Errorf("play.breach_frontline_step must be non-negative")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}

func validateWeights(weights map[string]int, name string) error {
	total := 0
	for key, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s.%s must be non-negative", name, key)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("%s must have a positive total", name)
	}
	return nil
}
