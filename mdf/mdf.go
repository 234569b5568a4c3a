//Package mdf reads and writes molecular-data (mdf) files: a verbatim header
//block, then "@molecule" markers each followed by the atom records of one
//molecule. A record line carries the key token (residue_index:atom_name), the
//element, the force-field type, the charge, and a variable-length list of
//bonded atom references. A bare reference names an atom in the same molecule;
//a reference in key-token form may point into another molecule.
package mdf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	biosym "github.com/rmera/biosym"
)

const minFields = 4 //key, element, force-field type, charge

// ReadFile reads the mdf file at path, which may be gzip- or zstd-compressed
// (".gz"/".zst" suffix). It returns the verbatim header lines and the keyed
// record table, in file order.
func ReadFile(path string) ([]string, *biosym.DataTable, error) {
	f, err := biosym.OpenDecompressed(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses an mdf file from r. The name is only used for error context and
// may be empty.
//
// Bond references are resolved in a second pass once the whole file is read,
// so forward references are fine; a reference to an atom that is never
// declared in any @molecule block fails the parse.
func Read(r io.Reader, name string) ([]string, *biosym.DataTable, error) {
	var header []string
	var table *biosym.DataTable
	molcount := 0
	nline := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		nline++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "@molecule" {
			if table == nil {
				table = biosym.NewDataTable(header)
			}
			molcount++
			continue
		}
		if table == nil {
			header = append(header, line)
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "@") {
			continue
		}
		rec, err := parseRecord(fields, molcount, name, nline, line)
		if err != nil {
			return nil, nil, err
		}
		if err := table.Add(rec); err != nil {
			return nil, nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if table == nil {
		table = biosym.NewDataTable(header)
	}
	if err := resolveBonds(table, name); err != nil {
		return nil, nil, err
	}
	return table.Header, table, nil
}

// parseRecord parses one data line into a DataRecord, checking that the
// molecule index packed in the residue token agrees with the number of
// @molecule markers seen so far.
func parseRecord(fields []string, molcount int, name string, nline int, line string) (*biosym.DataRecord, error) {
	key, err := parseKeyToken(fields[0], name, nline, line)
	if err != nil {
		return nil, err
	}
	if key.MolID != molcount {
		return nil, biosym.Parsef(name, nline, line, "residue token index %d does not match molecule marker count %d", key.MolID, molcount)
	}
	if len(fields) < minFields {
		return nil, biosym.Parsef(name, nline, line, "record has %d fields, at least %d required", len(fields), minFields)
	}
	rec := &biosym.DataRecord{Key: key, Symbol: fields[1], FFType: fields[2]}
	rec.Charge, err = strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, biosym.Parsef(name, nline, line, "charge is not numeric: %q", fields[3])
	}
	for _, tok := range fields[4:] {
		partner, err := parseBondToken(tok, key, name, nline, line)
		if err != nil {
			return nil, err
		}
		rec.Bonds = append(rec.Bonds, partner)
	}
	return rec, nil
}

// parseKeyToken parses a "RES_N:NAME" token into an AtomKey.
func parseKeyToken(tok, name string, nline int, line string) (biosym.AtomKey, error) {
	var key biosym.AtomKey
	restok, atname, ok := strings.Cut(tok, ":")
	if !ok || atname == "" {
		return key, biosym.Parsef(name, nline, line, "malformed key token %q, want residue_index:atom_name", tok)
	}
	cut := strings.LastIndex(restok, "_")
	if cut <= 0 || cut == len(restok)-1 {
		return key, biosym.Parsef(name, nline, line, "malformed residue token %q, want name_index", restok)
	}
	id, err := strconv.Atoi(restok[cut+1:])
	if err != nil {
		return key, biosym.Parsef(name, nline, line, "residue token index is not numeric: %q", restok[cut+1:])
	}
	key.MolName = restok[:cut]
	key.MolID = id
	key.Name = atname
	return key, nil
}

// parseBondToken resolves a bond reference to an AtomKey. A bare atom name
// refers to the declaring atom's own molecule; the full key-token form names
// molecule and atom explicitly.
func parseBondToken(tok string, owner biosym.AtomKey, name string, nline int, line string) (biosym.AtomKey, error) {
	if !strings.Contains(tok, ":") {
		return biosym.AtomKey{MolName: owner.MolName, MolID: owner.MolID, Name: tok}, nil
	}
	return parseKeyToken(tok, name, nline, line)
}

// resolveBonds checks that every bond reference in the table points to a
// declared record.
func resolveBonds(table *biosym.DataTable, name string) error {
	for _, k := range table.Keys() {
		rec, _ := table.Get(k)
		for _, partner := range rec.Bonds {
			if _, ok := table.Get(partner); !ok {
				return biosym.Parsef(name, 0, "", "record %s references bond partner %s, which is never declared", k.String(), partner.String())
			}
		}
	}
	return nil
}
