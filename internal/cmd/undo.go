package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/bangumi-tidy/internal/log"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Reverse the most recent rename session",
	Long: `Read the most recent operation log and reverse its successful
operations: renamed files move back, hard links are removed, and
directories created by the session are removed when empty.`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	session, err := log.FindLatestSession()
	if err != nil {
		return err
	}

	successful, failed, errs := log.UndoSession(session)
	fmt.Fprintf(cmd.OutOrStdout(), "undid %d operations, %d failed\n", successful, failed)
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "undo: %v\n", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d operations could not be undone", failed)
	}
	return nil
}
