// Package export renders snapshots as structured (JSON) or tabular (CSV)
// text, and reads JSON backups back for restore. Purely derived; nothing
// feeds back into the core.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/banklar/banklar/internal/model"
)

// CSVHeader is the header row of a transaction export.
const CSVHeader = "id,date,type,amount,account,from,to,category,source,savings_allocated,interest,description"

const (
	numFields    = 12
	colID        = 0
	colDate      = 1
	colType      = 2
	colAmount    = 3
	colAccount   = 4
	colFrom      = 5
	colTo        = 6
	colCategory  = 7
	colSource    = 8
	colAllocated = 9
	colInterest  = 10
	colDesc      = 11
)

// CSV writes the snapshot's transactions as a table, oldest first.
func CSV(w io.Writer, snap model.Snapshot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	txs := make([]model.Transaction, len(snap.Transactions))
	copy(txs, snap.Transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID
	row[colDate] = tx.Date.Format(time.RFC3339)
	row[colType] = string(tx.Type)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colAccount] = string(tx.Account)
	row[colFrom] = string(tx.From)
	row[colTo] = string(tx.To)
	row[colCategory] = tx.Category
	row[colSource] = tx.Source
	if tx.SavingsAllocated.IsPositive() {
		row[colAllocated] = tx.SavingsAllocated.StringFixed(2)
	}
	if tx.Interest {
		row[colInterest] = "true"
	}
	row[colDesc] = tx.Description
	return row
}
