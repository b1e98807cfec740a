package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/example/lyricfreq/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "lyricfreq",
		Short: "Vocabulary and keyword frequency analysis over song lyrics datasets",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newVocabCmd())
	cmd.AddCommand(newKeywordsCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newExtractCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if activeCfg.Paths.InputPath == "" {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// resolveOutputPath picks the results path from the command flag, the
// config, or the command's fallback, in that order.
func resolveOutputPath(flagValue, cfgValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfgValue != "" {
		return cfgValue
	}
	return fallback
}

// logYearDistribution logs the first years of the dataset's year histogram,
// ascending, capped so huge datasets stay readable.
func logYearDistribution(dist map[int]int) {
	if len(dist) == 0 {
		return
	}
	years := make([]int, 0, len(dist))
	for y := range dist {
		years = append(years, y)
	}
	sort.Ints(years)
	if len(years) > 10 {
		years = years[:10]
	}
	attrs := make([]any, 0, len(years)*2)
	for _, y := range years {
		attrs = append(attrs, strconv.Itoa(y), dist[y])
	}
	slog.Info("year distribution", attrs...)
}
