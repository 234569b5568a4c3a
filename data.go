/*
 * data.go, part of biosym.
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * biosym is developed at the Universidad de Santiago de Chile (USACH).
 *
 */

package biosym

// DataRecord is the mdf-side information for one atom: its element, its
// force-field type and charge, and the ordered list of bond partners, each
// given as a full AtomKey (partners in another molecule included).
type DataRecord struct {
	Key    AtomKey
	Symbol string
	FFType string
	Charge float64
	Bonds  []AtomKey
}

// Copy returns a copy of the record.
func (R *DataRecord) Copy() *DataRecord {
	newrec := *R
	newrec.Bonds = append([]AtomKey{}, R.Bonds...)
	return &newrec
}

// DataTable holds the records of a molecular-data file keyed by AtomKey,
// preserving insertion (i.e. file) order for stable re-emission, plus the
// verbatim header of the file.
type DataTable struct {
	Header []string
	keys   []AtomKey
	recs   map[AtomKey]*DataRecord
}

// NewDataTable returns an empty table with the given header lines.
func NewDataTable(header []string) *DataTable {
	return &DataTable{Header: header, recs: make(map[AtomKey]*DataRecord)}
}

// Add appends a record to the table. A duplicate key is a structural
// violation and returns a *ConsistencyError.
func (T *DataTable) Add(rec *DataRecord) error {
	if _, ok := T.recs[rec.Key]; ok {
		return Consistencyf(rec.Key, "duplicate record key")
	}
	T.keys = append(T.keys, rec.Key)
	T.recs[rec.Key] = rec
	return nil
}

// Get returns the record for the given key, if present.
func (T *DataTable) Get(key AtomKey) (*DataRecord, bool) {
	rec, ok := T.recs[key]
	return rec, ok
}

// Keys returns the record keys in insertion order. The returned slice is
// owned by the table and must not be modified.
func (T *DataTable) Keys() []AtomKey {
	return T.keys
}

// Len returns the number of records in the table.
func (T *DataTable) Len() int {
	return len(T.keys)
}

// Copy returns a deep copy of the table, preserving record order.
func (T *DataTable) Copy() *DataTable {
	newtab := NewDataTable(append([]string{}, T.Header...))
	for _, k := range T.keys {
		newtab.keys = append(newtab.keys, k)
		newtab.recs[k] = T.recs[k].Copy()
	}
	return newtab
}
