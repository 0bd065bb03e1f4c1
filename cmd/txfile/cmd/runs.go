package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ypay/txfile/pkg/archive"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded ingest runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.Open(archiveDir, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Runs()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No ingest runs recorded.")
			return nil
		}
		for _, run := range runs {
			fmt.Fprintf(out, "%s  %s  %d records  %s\n",
				run.ID, run.IngestedAt.Format(time.DateTime), run.Records, run.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
