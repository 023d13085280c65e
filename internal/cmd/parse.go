package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/bangumi-tidy/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [title]...",
	Short: "Parse release titles into structured records",
	Long: `Parse raw release titles given as arguments, or one per line on stdin
when no arguments are given, and print the structured records as an
aligned table. Titles no template recognizes are reported as "no match"
on stderr and skipped; one bad title never aborts the batch.`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	titles := args
	if len(titles) == 0 {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				titles = append(titles, line)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read titles: %w", err)
		}
	}

	header := []string{"GROUP", "TITLE ZH", "TITLE EN", "TITLE JP", "EP", "RES", "SOURCE", "SUB"}
	var rows [][]string
	for _, raw := range titles {
		rel := parser.Parse(raw)
		if rel == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "no match: %s\n", raw)
			continue
		}
		rows = append(rows, []string{
			rel.Group, rel.TitleZH, rel.TitleEN, rel.TitleJP,
			episodeLabel(rel), rel.Resolution, rel.Source, rel.Sub,
		})
	}
	if len(rows) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), renderTable(header, rows))
	}
	return nil
}

func episodeLabel(rel *parser.Release) string {
	if rel.Episode == parser.EpisodeNone {
		return fmt.Sprintf("S%02d", rel.Season)
	}
	return fmt.Sprintf("S%02dE%02d", rel.Season, rel.Episode)
}
