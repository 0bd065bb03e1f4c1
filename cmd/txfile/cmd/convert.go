package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ypay/txfile/pkg/codec"
)

var (
	convertInput        string
	convertInputFormat  = codec.Binary
	convertOutputFormat = codec.Text
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a transaction file between formats",
	Long: `Convert a transaction file between the binary, text and CSV formats.
The converted records are written to stdout.

Example:
  txfile convert --input txs.bin --input-format binary --output-format csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Converting from '%s':%s to :%s\n", convertInput, convertInputFormat, convertOutputFormat)

		f, err := os.Open(convertInput)
		if err != nil {
			return errors.Wrapf(err, "opening a file %s", convertInput)
		}
		defer f.Close()

		records, err := convertInputFormat.Parse(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d records successfully ingested\n\n", len(records))

		return convertOutputFormat.Write(out, records)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertInput, "input", "", "Input file path")
	convertCmd.Flags().Var(&convertInputFormat, "input-format", "Format of the input file (binary, text, csv)")
	convertCmd.Flags().Var(&convertOutputFormat, "output-format", "Format of the converted output (binary, text, csv)")
	_ = convertCmd.MarkFlagRequired("input")
}
