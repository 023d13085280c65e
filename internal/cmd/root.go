package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bangumi-tidy",
	Short: "A tool for organizing fansub anime releases",
	Long: `bangumi-tidy parses fansub release titles ([group] title - episode [tags])
into structured records and renames downloaded episodes into a
Title/Season NN/ library layout that Jellyfin, Plex, and Emby understand.

Parsing handles the dominant Chinese fansub conventions: per-language
titles (Chinese, English, Japanese), season markers including Chinese
numerals, episode offsets for groups that number across seasons, and
resolution/source/subtitle tags.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var instant bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&instant, "instant", "i", false, "Apply changes immediately without interactive preview")
}
