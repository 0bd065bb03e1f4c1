package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testText = `TX_ID: 1
TX_TYPE: DEPOSIT
FROM_USER_ID: 0
TO_USER_ID: 100
AMOUNT: 500
TIMESTAMP: 1700
STATUS: SUCCESS
DESCRIPTION: "Salary"
`

func TestCompareCommand_IdenticalAcrossFormats(t *testing.T) {
	csvFile := writeTestFile(t, "a.csv", testCSV)
	otherCSV := writeTestFile(t, "b.csv", testCSV)

	out, err := runCommand(t, "compare",
		"--file1", csvFile, "--format1", "csv",
		"--file2", otherCSV, "--format2", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "All transaction records are identical.")
}

func TestCompareCommand_ReportsUnmatchedRecord(t *testing.T) {
	// File 1 holds records 1 and 2, file 2 only record 1 (in another
	// format); record 2 must be attributed to file 1.
	csvFile := writeTestFile(t, "a.csv", testCSV)
	textFile := writeTestFile(t, "b.txt", testText)

	out, err := runCommand(t, "compare",
		"--file1", csvFile, "--format1", "csv",
		"--file2", textFile, "--format2", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "There are 1 unique transactions that don't match between the files")
	assert.Contains(t, out, "There is no equivivalent for transaction 2 in the file '#1'")
}

func TestCompareCommand_MissingFile(t *testing.T) {
	csvFile := writeTestFile(t, "a.csv", testCSV)

	_, err := runCommand(t, "compare",
		"--file1", csvFile, "--format1", "csv",
		"--file2", "absent.txt", "--format2", "text")
	require.Error(t, err)
}
