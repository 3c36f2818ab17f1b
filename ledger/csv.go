package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSVHeader is the fixed column order of a statement export.
var CSVHeader = []string{"Date", "Type", "Amount", "Balance"}

// CSVFileName returns the download filename for a customer's statement.
func CSVFileName(customerID uint) string {
	return fmt.Sprintf("statement_%d.csv", customerID)
}

// WriteCSV writes the statement's transactions as CSV, one row per entry
// after the header. Dates are RFC 3339.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.Date.Format(time.RFC3339),
			e.Type,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			strconv.FormatFloat(e.Balance, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
