package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/example/lyricfreq/internal/analyzer"
	"github.com/example/lyricfreq/internal/report"
	"github.com/example/lyricfreq/internal/segment"
	"github.com/example/lyricfreq/internal/songs"
	"github.com/example/lyricfreq/internal/vocab"
	"github.com/spf13/cobra"
)

func newKeywordsCmd() *cobra.Command {
	var out string
	var keywords []string
	var keywordsFile string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Track per-year frequencies of a fixed keyword set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			kws, err := resolveKeywords(keywords, keywordsFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			seg, err := segment.NewGSESegmenter()
			if err != nil {
				return fmt.Errorf("init segmenter: %w", err)
			}

			a := analyzer.NewKeywordAnalyzer(vocab.NewExtractor(seg), kws)
			a.ProgressInterval = cfg.Analysis.ProgressInterval

			src, err := songs.OpenCSV(cfg.Paths.InputPath)
			if err != nil {
				return err
			}
			defer src.Close()

			slog.Info("analyzing dataset", "path", cfg.Paths.InputPath, "keywords", kws)
			if err := a.Analyze(ctx, src); err != nil {
				return err
			}
			logYearDistribution(src.YearDistribution())

			outPath := resolveOutputPath(out, cfg.Paths.OutputPath, "rap_keyword_freq.json")
			if err := report.WriteJSON(outPath, report.NewKeywordReport(a, time.Now())); err != nil {
				return err
			}
			slog.Info("results saved", "path", outPath)

			report.PrintKeywordSummary(cmd.OutOrStdout(), a)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Keyword to track (repeatable)")
	cmd.Flags().StringVar(&keywordsFile, "keywords-file", "", "File with one keyword per line")
	cmd.Flags().StringVar(&out, "out", "", "Results JSON path (default rap_keyword_freq.json)")

	return cmd
}

// resolveKeywords merges the repeated flag values with the optional
// keywords file. Blank lines and #-comments in the file are ignored.
func resolveKeywords(flags []string, file string) ([]string, error) {
	kws := make([]string, 0, len(flags))
	for _, k := range flags {
		if k = strings.TrimSpace(k); k != "" {
			kws = append(kws, k)
		}
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read keywords file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			kws = append(kws, line)
		}
	}

	if len(kws) == 0 {
		return nil, fmt.Errorf("either provide --keyword or --keywords-file")
	}
	return kws, nil
}
