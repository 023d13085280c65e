package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Digital-Shane/bangumi-tidy/internal/config"
	"github.com/Digital-Shane/bangumi-tidy/internal/log"
	"github.com/Digital-Shane/bangumi-tidy/internal/match"
	"github.com/Digital-Shane/bangumi-tidy/internal/rename"
	"github.com/Digital-Shane/bangumi-tidy/internal/scan"
	"github.com/Digital-Shane/bangumi-tidy/internal/tui"
)

var (
	renameDest  string
	renameDepth int
	renameLink  bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "Rename downloaded episodes into the library layout",
	Long: `Scan a downloads directory (the current directory by default) for video
and subtitle files, parse each filename, and move the files into the
Title/Season NN/ layout under the library root. Unparseable and filtered
files are listed and left alone. Shows an interactive preview unless
--instant is given; --link hard-links into the library so the download
keeps seeding.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVar(&renameDest, "dest", "", "Destination library root (defaults to the configured library path)")
	renameCmd.Flags().IntVar(&renameDepth, "depth", 0, "Directory depth to scan")
	renameCmd.Flags().BoolVar(&renameLink, "link", false, "Hard-link into the library instead of moving")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dest := renameDest
	if dest == "" {
		dest = cfg.LibraryPath
	}
	if dest == "" {
		dest = dir
	}

	ix, err := loadLibraryIndex()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tree, err := scan.Scan(ctx, dir, renameDepth)
	if err != nil {
		return err
	}

	planner := &rename.Planner{Config: cfg, Index: ix, Root: dest}
	plan := planner.Build(ctx, tree)
	if len(plan.Files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no media files found")
		return nil
	}

	if err := log.StartSession("rename", os.Args[1:]); err == nil {
		defer func() { _ = log.EndSession() }()
	}

	if instant {
		res := rename.Execute(plan, renameLink)
		fmt.Fprintf(cmd.OutOrStdout(), "moved %d, linked %d, skipped %d, errors %d\n",
			res.Moved, res.Linked, res.Skipped, res.Errors)
		if res.Errors > 0 {
			return fmt.Errorf("%d errors occurred during renaming", res.Errors)
		}
		return nil
	}

	p := tea.NewProgram(tui.NewPreviewModel(plan, renameLink), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*tui.PreviewModel); ok && m.Applied() && m.Result().Errors > 0 {
		return fmt.Errorf("%d errors occurred during renaming", m.Result().Errors)
	}
	return nil
}

func loadLibraryIndex() (*match.Index, error) {
	path, err := match.DefaultLibraryPath()
	if err != nil {
		return nil, err
	}
	lib, err := match.LoadLibrary(path)
	if err != nil {
		return nil, err
	}
	return lib.Index(), nil
}
