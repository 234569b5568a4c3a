package mdf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	biosym "github.com/rmera/biosym"
)

// Write serializes the table to w in mdf format: header lines verbatim (a
// minimal header is generated if the table carries none), then one @molecule
// marker per molecule followed by its records in insertion order. Bond
// partners within the same molecule are written as bare atom names, partners
// in another molecule in full key-token form. No end marker is emitted.
func Write(w io.Writer, table *biosym.DataTable) error {
	if table == nil {
		return biosym.CErrorf("mdf.Write: nil data table")
	}
	out := bufio.NewWriter(w)
	header := table.Header
	if len(header) == 0 {
		header = defaultHeader()
	}
	for _, h := range header {
		fmt.Fprintln(out, h)
	}
	curmol := 0
	for _, k := range table.Keys() {
		rec, _ := table.Get(k)
		if k.MolID != curmol {
			fmt.Fprintf(out, "@molecule %s\n", k.MolName)
			curmol = k.MolID
		}
		fmt.Fprintf(out, "%-20s %-2s %-7s %8.4f", k.String(), rec.Symbol, rec.FFType, rec.Charge)
		for _, partner := range rec.Bonds {
			if partner.MolID == k.MolID && partner.MolName == k.MolName {
				fmt.Fprintf(out, " %s", partner.Name)
			} else {
				fmt.Fprintf(out, " %s", partner.String())
			}
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return out.Flush()
}

// WriteFile serializes the table to the file at path, overwriting it if it
// exists.
func WriteFile(path string, table *biosym.DataTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, table)
}

func defaultHeader() []string {
	return []string{
		"!BIOSYM molecular_data 4",
		"!DATE " + time.Now().Format("Mon Jan 02 15:04:05 2006"),
		"#topology",
	}
}
