// Package export encodes a store snapshot as a CSV document.
//
// The wire format is fixed: a "Date,Type,Category,Description,Amount" header,
// LF line endings, ISO dates, uppercase type tags, Category and Description
// always double-quoted with embedded quotes doubled, and amounts as plain
// two-decimal numbers. encoding/csv quotes minimally and cannot reproduce
// this byte-for-byte, so the fields are written directly.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tracker/internal/core"
)

// Header is the first line of every export.
const Header = "Date,Type,Category,Description,Amount"

// ExportError wraps any I/O failure during export with the destination path.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Write encodes the transactions to w in the given order. Callers pass a
// store snapshot, which is already sorted date descending, id descending.
func Write(w io.Writer, txs []core.Transaction) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}
	for _, tx := range txs {
		line := tx.Date.ISO() + "," +
			string(tx.Type) + "," +
			quote(tx.Category) + "," +
			quote(tx.Description) + "," +
			tx.Amount.Decimal() + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// File writes the document to path atomically: the encoder targets a temp
// file in the same directory and renames it over the destination only after
// a successful flush, so a failed export never leaves a partial file behind.
func File(path string, txs []core.Transaction) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.csv")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := Write(tmp, txs); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &ExportError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// quote surrounds a field with double quotes, doubling any embedded quotes.
// Embedded newlines stay inside the quoted field.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
