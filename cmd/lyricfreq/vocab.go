package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/lyricfreq/internal/analyzer"
	"github.com/example/lyricfreq/internal/report"
	"github.com/example/lyricfreq/internal/segment"
	"github.com/example/lyricfreq/internal/songs"
	"github.com/example/lyricfreq/internal/vocab"
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Rank vocabulary by year across a lyrics dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			seg, err := segment.NewGSESegmenter()
			if err != nil {
				return fmt.Errorf("init segmenter: %w", err)
			}

			a := analyzer.NewVocabularyAnalyzer(vocab.NewExtractor(seg))
			a.ProgressInterval = cfg.Analysis.ProgressInterval

			src, err := songs.OpenCSV(cfg.Paths.InputPath)
			if err != nil {
				return err
			}
			defer src.Close()

			slog.Info("analyzing dataset", "path", cfg.Paths.InputPath)
			if err := a.Analyze(ctx, src); err != nil {
				return err
			}
			logYearDistribution(src.YearDistribution())

			outPath := resolveOutputPath(out, cfg.Paths.OutputPath, "rap_vocabulary_analysis.json")
			rep := report.NewVocabularyReport(a, cfg.Analysis.TopN, time.Now())
			if err := report.WriteJSON(outPath, rep); err != nil {
				return err
			}
			slog.Info("results saved", "path", outPath)

			report.PrintVocabularySummary(cmd.OutOrStdout(), a, cfg.Analysis.SummaryTopN)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Results JSON path (default rap_vocabulary_analysis.json)")

	return cmd
}
