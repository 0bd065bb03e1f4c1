package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ypay/txfile/pkg/archive"
	"github.com/ypay/txfile/pkg/codec"
)

var exportFormat = codec.CSV

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every archived record to stdout",
	Long: `Write every record held in the local archive to stdout in the
selected format, ordered by transaction id.

Example:
  txfile export --output-format text > txs.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.Open(archiveDir, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Records()
		if err != nil {
			return err
		}
		logger.Infow("exporting records", "count", len(records), "format", exportFormat.String())

		return exportFormat.Write(cmd.OutOrStdout(), records)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Var(&exportFormat, "output-format", "Format of the exported output (binary, text, csv)")
}
