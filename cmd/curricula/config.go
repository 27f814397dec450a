package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/curricula/curriculum"
	"github.com/katalvlaran/curricula/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultFormat   = "text"
	defaultLogLevel = "warn"
	envPrefix       = "CURRICULA"
	configName      = "curricula"
)

// config is the resolved CLI configuration.
type config struct {
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
	MaxPaths int    `mapstructure:"max_paths"`
	Parallel int    `mapstructure:"parallel"`
}

// app carries state shared by every subcommand once init has run.
type app struct {
	cfg    config
	logger *log.Logger
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	a.cfg = cfg
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: configName,
		Level:  level,
	})
	a.logger.Debug("configuration loaded",
		"format", cfg.Format,
		"max_paths", cfg.MaxPaths,
		"parallel", cfg.Parallel,
	)

	return nil
}

// loadConfig merges defaults, the config file, CURRICULA_* variables and
// flags, later sources winning.
func loadConfig(fs *pflag.FlagSet) (config, error) {
	v := viper.New()

	// 1. Defaults
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("max_paths", 0)
	v.SetDefault("parallel", 0)

	// 2. File
	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// 4. Flags, keyed by their snake_case names
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return config{}, bindErr
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = runtime.NumCPU()
	}

	return cfg, nil
}

// load reads one definition file into a curriculum wired to the app logger.
func (a *app) load(path string) (*curriculum.Curriculum, error) {
	c, err := loader.Load(path,
		curriculum.WithLogger(a.logger.With("file", path)),
		curriculum.WithMaxPaths(a.cfg.MaxPaths),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("loaded", "file", path, "curriculum", c.Name(), "courses", c.Len())

	return c, nil
}
