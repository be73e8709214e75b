// Package render writes rows and column metadata to an output stream, either
// as JSONL (one ordered JSON object per row, optionally pretty printed) or as
// aligned text tables.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bisegni/sqlwalk/pkg/database"
)

// Encoder renders row sequences.
type Encoder struct {
	Pretty bool
	Text   bool
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// WriteRows streams the rows to w in the configured format.
func (e *Encoder) WriteRows(w io.Writer, rows []*database.Row) error {
	if e.Text {
		return writeRowsText(w, rows)
	}
	return e.writeRowsJSON(w, rows)
}

func (e *Encoder) writeRowsJSON(w io.Writer, rows []*database.Row) error {
	encoder := json.NewEncoder(w)
	if e.Pretty {
		encoder.SetIndent("", "  ")
	} else {
		encoder.SetIndent("", "")
	}

	for _, row := range rows {
		if err := encoder.Encode(row.Fields()); err != nil {
			return err
		}
	}
	return nil
}

func writeRowsText(w io.Writer, rows []*database.Row) error {
	if len(rows) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := rows[0].Fields().Keys()
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		values := make([]string, 0, len(header))
		for _, name := range header {
			values = append(values, displayValue(row, name))
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	return tw.Flush()
}

// WriteColumns prints a describe-style table of column metadata.
func WriteColumns(w io.Writer, cols []*database.Column) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tTYPE\tNULL\tLENGTH\tAUTOINC\tPRIMARY")

	for _, col := range cols {
		length := ""
		if col.MaxLength() >= 0 {
			length = fmt.Sprintf("%d", col.MaxLength())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			col.Name(),
			col.Type(),
			yesNo(!col.NotNull()),
			length,
			yesNo(col.AutoIncrement()),
			yesNo(col.IsPrimaryKey()),
		)
	}
	return tw.Flush()
}

func displayValue(row *database.Row, name string) string {
	v, ok := row.Get(name)
	if !ok || v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
