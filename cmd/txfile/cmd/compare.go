package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ypay/txfile/pkg/codec"
	"github.com/ypay/txfile/pkg/compare"
	"github.com/ypay/txfile/pkg/tx"
)

var (
	compareFile1   string
	compareFile2   string
	compareFormat1 = codec.Binary
	compareFormat2 = codec.Binary
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the records of two transaction files",
	Long: `Compare two transaction files record by record, regardless of their
formats. Records match only when every field is equal; for each record
without a matching occurrence the missing side is reported.

Example:
  txfile compare --file1 a.bin --format1 binary --file2 b.csv --format2 csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Comparing 2 files\n\t1:'%s':%s\n\t2:'%s':%s\n\n",
			compareFile1, compareFormat1, compareFile2, compareFormat2)

		first, err := readRecords(compareFormat1, compareFile1)
		if err != nil {
			return err
		}
		second, err := readRecords(compareFormat2, compareFile2)
		if err != nil {
			return err
		}

		mismatches := compare.Diff(first, second)
		if len(mismatches) == 0 {
			fmt.Fprintln(out, "All transaction records are identical.")
			return nil
		}

		fmt.Fprintf(out, "There are %d unique transactions that don't match between the files\n", len(mismatches))
		for _, m := range mismatches {
			fmt.Fprintf(out, "There is no equivivalent for transaction %d in the file '#%d'\n",
				m.Record.ID, m.File())
		}
		return nil
	},
}

func readRecords(format codec.Format, path string) ([]tx.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening a file %s", path)
	}
	defer f.Close()
	return format.Parse(f)
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareFile1, "file1", "", "First file path")
	compareCmd.Flags().Var(&compareFormat1, "format1", "Format of the first file")
	compareCmd.Flags().StringVar(&compareFile2, "file2", "", "Second file path")
	compareCmd.Flags().Var(&compareFormat2, "format2", "Format of the second file")
	_ = compareCmd.MarkFlagRequired("file1")
	_ = compareCmd.MarkFlagRequired("file2")
}
