/*
 * mapping.go, part of biosym.
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

import (
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Direction declares which field a mapping reads and which it rewrites. The
// direction is tagged explicitly in the mapping document rather than inferred
// from the shape of its keys.
type Direction int

const (
	// TypeToCharge looks up the current force-field type and rewrites the
	// charge.
	TypeToCharge Direction = iota + 1
	// ChargeToType looks up the current charge and rewrites the force-field
	// type.
	ChargeToType
)

const (
	dirTypeToCharge = "type2charge"
	dirChargeToType = "charge2type"
)

// Mapping associates an old scalar value (a force-field type string, or a
// charge) to a new one. It is applied to every atom currently holding the old
// value; atoms whose value has no entry are left alone. A Mapping is
// read-only once loaded.
type Mapping struct {
	dir          Direction
	typeToCharge map[string]float64
	chargeToType map[float64]string
}

// mappingDoc is the on-disk shape of a mapping document:
//
//	direction: type2charge
//	values:
//	  c3: -0.106
//	  hc: 0.053
type mappingDoc struct {
	Direction string            `yaml:"direction"`
	Values    map[string]string `yaml:"values"`
}

// LoadMapping opens and decodes the YAML mapping document at path. I/O errors
// are returned untouched.
func LoadMapping(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadMapping(f)
	return m, errDecorate(err, "LoadMapping")
}

// ReadMapping decodes a YAML mapping document from r and validates it: the
// direction tag must be "type2charge" or "charge2type", the value set must
// not be empty, and the charges (values or keys, depending on direction) must
// be numeric.
func ReadMapping(r io.Reader) (*Mapping, error) {
	var doc mappingDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Values) == 0 {
		return nil, CErrorf("ReadMapping: mapping document has no values")
	}
	m := new(Mapping)
	switch doc.Direction {
	case dirTypeToCharge:
		m.dir = TypeToCharge
		m.typeToCharge = make(map[string]float64, len(doc.Values))
		for t, qs := range doc.Values {
			q, err := strconv.ParseFloat(qs, 64)
			if err != nil {
				return nil, CErrorf("ReadMapping: charge for type %q is not numeric: %q", t, qs)
			}
			m.typeToCharge[t] = q
		}
	case dirChargeToType:
		m.dir = ChargeToType
		m.chargeToType = make(map[float64]string, len(doc.Values))
		for qs, t := range doc.Values {
			q, err := strconv.ParseFloat(qs, 64)
			if err != nil {
				return nil, CErrorf("ReadMapping: charge key is not numeric: %q", qs)
			}
			m.chargeToType[q] = t
		}
	default:
		return nil, CErrorf("ReadMapping: unknown mapping direction %q", doc.Direction)
	}
	return m, nil
}

// Dir returns the declared direction of the mapping.
func (M *Mapping) Dir() Direction {
	return M.dir
}

// Updates reports how many atom records a call to Apply actually changed in
// each representation; 0 for a representation that was not supplied.
type Updates struct {
	Car int
	Mdf int
}

// Apply rewrites force-field types or charges (per the mapping's direction)
// wherever the current value of the looked-up field has an entry in the
// mapping. Either sys or table may be nil, in which case it is skipped and
// returned as nil; supplying neither is an error. The inputs are not
// modified: new copies are returned. A value with no mapping entry is left
// unchanged and is not an error, partial coverage is expected.
func (M *Mapping) Apply(sys *System, table *DataTable) (*System, *DataTable, Updates, error) {
	var ups Updates
	if sys == nil && table == nil {
		return nil, nil, ups, CErrorf("Mapping.Apply: neither a system nor a data table supplied")
	}
	var newsys *System
	var newtab *DataTable
	if sys != nil {
		newsys = sys.Copy()
		for _, mol := range newsys.Mols {
			for _, at := range mol.Atoms {
				if M.remapAtom(&at.FFType, &at.Charge) {
					ups.Car++
				}
			}
		}
	}
	if table != nil {
		newtab = table.Copy()
		for _, k := range newtab.Keys() {
			rec, _ := newtab.Get(k)
			if M.remapAtom(&rec.FFType, &rec.Charge) {
				ups.Mdf++
			}
		}
	}
	return newsys, newtab, ups, nil
}

// remapAtom applies the mapping to one type/charge pair in place, reporting
// whether the stored value actually changed.
func (M *Mapping) remapAtom(fftype *string, charge *float64) bool {
	switch M.dir {
	case TypeToCharge:
		q, ok := M.typeToCharge[*fftype]
		if !ok || q == *charge {
			return false
		}
		*charge = q
		return true
	case ChargeToType:
		t, ok := M.chargeToType[*charge]
		if !ok || t == *fftype {
			return false
		}
		*fftype = t
		return true
	}
	return false
}
