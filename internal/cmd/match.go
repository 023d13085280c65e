package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/bangumi-tidy/internal/config"
	"github.com/Digital-Shane/bangumi-tidy/internal/parser"
	"github.com/Digital-Shane/bangumi-tidy/internal/provider"
)

var matchCmd = &cobra.Command{
	Use:   "match [title]...",
	Short: "Resolve release titles against the tracked series library",
	Long: `Parse each release title and look its title variants up in the library
alias index. With TMDB lookup enabled in the config, titles missing from
the library get a TMDB suggestion; lookup failures degrade to "not in
library", never to an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ix, err := loadLibraryIndex()
	if err != nil {
		return err
	}

	var tmdb *provider.TMDBProvider
	if cfg.EnableTMDBLookup && cfg.TMDBAPIKey != "" {
		tmdb, _ = provider.NewTMDBProvider(cfg.TMDBAPIKey, cfg.TMDBLanguage)
	}

	out := cmd.OutOrStdout()
	for _, raw := range args {
		rel := parser.Parse(raw)
		if rel == nil {
			fmt.Fprintf(out, "no match: %s\n", raw)
			continue
		}
		if s, ok := ix.LookupRelease(rel); ok {
			fmt.Fprintf(out, "%s -> %s\n", raw, s.Title)
			continue
		}
		if info := tmdbSuggest(tmdb, rel); info != nil {
			fmt.Fprintf(out, "%s -> not in library (TMDB: %s, %s)\n", raw, info.Name, info.FirstAirYear)
			continue
		}
		fmt.Fprintf(out, "%s -> not in library\n", raw)
	}
	return nil
}

func tmdbSuggest(p *provider.TMDBProvider, rel *parser.Release) *provider.SeriesInfo {
	if p == nil {
		return nil
	}
	for _, title := range []string{rel.TitleZH, rel.TitleEN, rel.TitleJP} {
		if title == "" {
			continue
		}
		if info, err := p.SearchSeries(title); err == nil {
			return info
		}
	}
	return nil
}
