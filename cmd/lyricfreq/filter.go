package main

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/example/lyricfreq/internal/songs"
	"github.com/spf13/cobra"
)

func newFilterCmd() *cobra.Command {
	var out string
	var language string
	var contains string
	var tagPattern string
	var rapHipHop bool
	var yearStart, yearEnd int
	var minLyricsLen int

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a songs CSV by language, year, lyrics and tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			opts := songs.FilterOptions{
				Language:     language,
				YearStart:    yearStart,
				YearEnd:      yearEnd,
				MinLyricsLen: minLyricsLen,
				Contains:     contains,
			}
			opts.TagPattern, err = resolveTagPattern(tagPattern, rapHipHop)
			if err != nil {
				return err
			}

			outPath := resolveOutputPath(out, cfg.Paths.OutputPath, "filtered_songs.csv")
			slog.Info("filtering dataset", "path", cfg.Paths.InputPath, "out", outPath)

			summary, err := songs.FilterCSV(cfg.Paths.InputPath, outPath, opts)
			if err != nil {
				return err
			}

			if summary.Matched == 0 {
				slog.Warn("no songs matched the filter criteria")
			}
			logYearDistribution(summary.YearCounts)

			fmt.Fprintf(cmd.OutOrStdout(), "Matched %d of %d songs (%d skipped), saved to %s\n",
				summary.Matched, summary.TotalRows, summary.Skipped, outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Filtered CSV path (default filtered_songs.csv)")
	cmd.Flags().StringVar(&language, "language", "", "Keep only songs with this language value")
	cmd.Flags().IntVar(&yearStart, "year-start", 0, "Keep only songs from this year on")
	cmd.Flags().IntVar(&yearEnd, "year-end", 0, "Keep only songs up to this year")
	cmd.Flags().IntVar(&minLyricsLen, "min-lyrics-length", 0, "Minimum lyrics length in characters")
	cmd.Flags().StringVar(&contains, "contains", "", "Keep only songs whose lyrics contain this text (case-insensitive)")
	cmd.Flags().StringVar(&tagPattern, "tag-pattern", "", "Keep only songs whose tag matches this regular expression")
	cmd.Flags().BoolVar(&rapHipHop, "rap-hiphop", false, "Shorthand for the rap/hip-hop tag pattern")

	return cmd
}

func resolveTagPattern(pattern string, rapHipHop bool) (*regexp.Regexp, error) {
	if pattern != "" && rapHipHop {
		return nil, fmt.Errorf("--tag-pattern and --rap-hiphop are mutually exclusive")
	}
	if rapHipHop {
		return songs.RapHipHopPattern, nil
	}
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid tag pattern: %w", err)
	}
	return re, nil
}
