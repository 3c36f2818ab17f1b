package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFileName(t *testing.T) {
	assert.Equal(t, "statement_7.csv", CSVFileName(7))
}

func TestWriteCSV(t *testing.T) {
	entries := []Entry{
		{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Type: EntrySale, Amount: 500, Balance: 500},
		{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Type: EntryPayment, Amount: 200, Balance: 300},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Amount,Balance", lines[0])
	assert.Equal(t, "2025-03-01T00:00:00Z,sale,500,500", lines[1])
	assert.Equal(t, "2025-03-02T00:00:00Z,payment,200,300", lines[2])
}

func TestWriteCSVEmptyStatement(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Type,Amount,Balance\n", buf.String())
}
