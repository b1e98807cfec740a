package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig    `mapstructure:"paths"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	LogLevel string         `mapstructure:"log_level"`
}

type PathsConfig struct {
	InputPath  string `mapstructure:"input_path"`
	OutputPath string `mapstructure:"output_path"`
}

type AnalysisConfig struct {
	TopN             int `mapstructure:"top_n"`
	SummaryTopN      int `mapstructure:"summary_top_n"`
	ProgressInterval int `mapstructure:"progress_interval"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			InputPath:  "chinese_raphiphop.csv",
			OutputPath: "",
		},
		Analysis: AnalysisConfig{
			TopN:             50,
			SummaryTopN:      20,
			ProgressInterval: 10000,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-input-path", defaults.Paths.InputPath, "Path to the songs CSV dataset")
	fs.String("input", defaults.Paths.InputPath, "Path to the songs CSV dataset (alias for --paths-input-path)")
	fs.String("paths-output-path", defaults.Paths.OutputPath, "Path for the results file (per-command default when empty)")
	fs.String("output", defaults.Paths.OutputPath, "Path for the results file (alias for --paths-output-path)")
	fs.Int("analysis-top-n", defaults.Analysis.TopN, "Top words kept per year in the results file")
	fs.Int("analysis-summary-top-n", defaults.Analysis.SummaryTopN, "Top words shown per year in the console summary")
	fs.Int("analysis-progress-interval", defaults.Analysis.ProgressInterval, "Rows between progress log entries")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("LYRICFREQ")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("lyricfreq")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.input_path", c.Paths.InputPath)
	v.SetDefault("paths.output_path", c.Paths.OutputPath)
	v.SetDefault("analysis.top_n", c.Analysis.TopN)
	v.SetDefault("analysis.summary_top_n", c.Analysis.SummaryTopN)
	v.SetDefault("analysis.progress_interval", c.Analysis.ProgressInterval)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("paths.input_path", "paths-input-path")
	v.RegisterAlias("paths.input_path", "input")
	v.RegisterAlias("paths.output_path", "paths-output-path")
	v.RegisterAlias("paths.output_path", "output")
	v.RegisterAlias("analysis.top_n", "analysis-top-n")
	v.RegisterAlias("analysis.summary_top_n", "analysis-summary-top-n")
	v.RegisterAlias("analysis.progress_interval", "analysis-progress-interval")
	v.RegisterAlias("log_level", "log-level")
}

// ParseLogLevel maps a config string to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
