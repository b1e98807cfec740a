package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/lyricfreq/internal/segment"
	"github.com/example/lyricfreq/internal/vocab"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract vocabulary words from text (one per line)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := readExtractText(text, cmd.InOrStdin())
			if err != nil {
				return err
			}

			seg, err := segment.NewGSESegmenter()
			if err != nil {
				return fmt.Errorf("init segmenter: %w", err)
			}

			for _, word := range vocab.NewExtractor(seg).Extract(input) {
				fmt.Fprintln(cmd.OutOrStdout(), word)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to analyze (if empty, read from stdin)")

	return cmd
}

func readExtractText(text string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	input := strings.TrimSpace(string(b))
	if input == "" {
		return "", fmt.Errorf("either provide --text or pipe text on stdin")
	}
	return input, nil
}
