package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ypay/txfile/pkg/archive"
	"github.com/ypay/txfile/pkg/codec"
)

var (
	ingestInput  string
	ingestFormat = codec.Binary
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a transaction file into the local archive",
	Long: `Parse a transaction file and persist its records into the local
archive. Each invocation is recorded as a run with its own identifier.

Example:
  txfile ingest --input txs.csv --format csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(ingestInput)
		if err != nil {
			return errors.Wrapf(err, "opening a file %s", ingestInput)
		}
		defer f.Close()

		records, err := ingestFormat.Parse(f)
		if err != nil {
			return err
		}

		store, err := archive.Open(archiveDir, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		runID, err := store.Ingest(records, ingestInput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d records (run %s)\n", len(records), runID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestInput, "input", "", "Input file path")
	ingestCmd.Flags().Var(&ingestFormat, "format", "Format of the input file (binary, text, csv)")
	_ = ingestCmd.MarkFlagRequired("input")
}
