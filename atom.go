/*
 * atom.go, part of biosym.
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
	"fmt"

	v3 "github.com/rmera/biosym/v3"
)

/**Note: Several accessors here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong in them, the program is
 * way-most likely wrong and should crash (say, requesting an out-of-bounds
 * molecule). Everything that can fail on user input returns an error.**/

// PBC holds a periodic box: three lengths (A) and three angles (degrees).
// A nil *PBC in a System means the system is not periodic.
type PBC struct {
	X, Y, Z            float64
	Alpha, Beta, Gamma float64
}

// Copy returns a copy of the box, or nil if the receiver is nil.
func (P *PBC) Copy() *PBC {
	if P == nil {
		return nil
	}
	box := *P
	return &box
}

// AtomKey identifies one atom consistently across the car and mdf
// representations of a system: residue name, 1-based molecule index and the
// atom name, which is unique within its molecule.
type AtomKey struct {
	MolName string
	MolID   int
	Name    string
}

// String returns the key in the residue-token convention shared by both
// formats, e.g. "NEC_1:C1".
func (k AtomKey) String() string {
	return fmt.Sprintf("%s_%d:%s", k.MolName, k.MolID, k.Name)
}

// Atom contains the per-atom data read from a coordinate archive, except for
// the coordinates, which live in the molecule's coordinate matrix.
type Atom struct {
	Name    string //unique within the molecule, e.g. "C1"
	MolName string //residue name, 4 characters at most by format convention
	MolID   int    //1-based molecule index, assigned at build time
	FFType  string //force-field type, distinct from the chemical element
	Symbol  string //element symbol
	Charge  float64
	Mass    float64 //from the symbol table, 0 if the symbol is unknown
}

// Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("biosym: attempted to copy a nil atom")
	}
	newat := *A
	return &newat
}

// Key returns the AtomKey of the atom.
func (A *Atom) Key() AtomKey {
	return AtomKey{MolName: A.MolName, MolID: A.MolID, Name: A.Name}
}

// Molecule is an ordered sequence of atoms plus their coordinates. Atom order
// equals file order and is significant for round-trips and for grid
// renumbering.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix //one row per atom, same order as Atoms
	Name   string     //residue name
	ID     int        //1-based index within the System
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns the atom at index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("biosym: requested atom out of bounds")
	}
	return M.Atoms[i]
}

// Copy returns a deep copy of the molecule, coordinates included.
func (M *Molecule) Copy() *Molecule {
	newmol := new(Molecule)
	newmol.Name = M.Name
	newmol.ID = M.ID
	newmol.Atoms = make([]*Atom, M.Len())
	for i, at := range M.Atoms {
		newmol.Atoms[i] = at.Copy()
	}
	if M.Coords != nil {
		newmol.Coords = v3.Zeros(M.Len())
		newmol.Coords.Copy(M.Coords)
	}
	return newmol
}

// SetID sets the molecule index to id, on the molecule and on every atom.
func (M *Molecule) SetID(id int) {
	M.ID = id
	for _, at := range M.Atoms {
		at.MolID = id
	}
}

// SetName sets the residue name to name, truncated to the 4-character format
// convention, on the molecule and on every atom.
func (M *Molecule) SetName(name string) {
	if len(name) > 4 {
		name = name[:4]
	}
	M.Name = name
	for _, at := range M.Atoms {
		at.MolName = name
	}
}

// System is an ordered sequence of molecules plus the verbatim header of the
// coordinate archive it came from and the optional periodic box.
type System struct {
	Header []string
	Mols   []*Molecule
	Box    *PBC //nil means non-periodic
}

// NewSystem builds a System from its parts. It returns an error on nil mols.
func NewSystem(header []string, mols []*Molecule, box *PBC) (*System, error) {
	if mols == nil {
		return nil, CErrorf("NewSystem: nil molecule slice")
	}
	return &System{Header: header, Mols: mols, Box: box}, nil
}

// Len returns the number of molecules in the system.
func (S *System) Len() int {
	return len(S.Mols)
}

// NAtoms returns the total number of atoms in the system.
func (S *System) NAtoms() int {
	n := 0
	for _, m := range S.Mols {
		n += m.Len()
	}
	return n
}

// Mol returns the molecule at index i. Panics if out of range.
func (S *System) Mol(i int) *Molecule {
	if i >= S.Len() {
		panic("biosym: requested molecule out of bounds")
	}
	return S.Mols[i]
}

// Copy returns a deep copy of the system.
func (S *System) Copy() *System {
	newsys := new(System)
	newsys.Header = append([]string{}, S.Header...)
	newsys.Mols = make([]*Molecule, S.Len())
	for i, m := range S.Mols {
		newsys.Mols[i] = m.Copy()
	}
	newsys.Box = S.Box.Copy()
	return newsys
}

// Keys returns the AtomKey of every atom in the system, in file order.
func (S *System) Keys() []AtomKey {
	keys := make([]AtomKey, 0, S.NAtoms())
	for _, m := range S.Mols {
		for _, at := range m.Atoms {
			keys = append(keys, at.Key())
		}
	}
	return keys
}

// ResetIDs renumbers the molecules (and their atoms) to their current 1-based
// position in the system.
func (S *System) ResetIDs() {
	for i, m := range S.Mols {
		m.SetID(i + 1)
	}
}

// BoundingBox returns the axis-aligned bounding box of every atom position in
// the system. It returns an error if the system has no atoms.
func (S *System) BoundingBox() (min, max [3]float64, err error) {
	first := true
	for _, m := range S.Mols {
		if m.Len() == 0 || m.Coords == nil {
			continue
		}
		mmin, mmax := m.Coords.MinMax()
		if first {
			min, max = mmin, mmax
			first = false
			continue
		}
		for a := 0; a < 3; a++ {
			if mmin[a] < min[a] {
				min[a] = mmin[a]
			}
			if mmax[a] > max[a] {
				max[a] = mmax[a]
			}
		}
	}
	if first {
		return min, max, CErrorf("BoundingBox: system contains no atoms")
	}
	return min, max, nil
}

// Extent returns the bounding-box extent of the system along each axis.
func (S *System) Extent() ([3]float64, error) {
	min, max, err := S.BoundingBox()
	if err != nil {
		return [3]float64{}, errDecorate(err, "Extent")
	}
	return [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}, nil
}

// InBox reports whether every atom position lies inside the system's periodic
// box, assuming the box is anchored at the bounding-box origin. It is true
// for non-periodic systems.
func (S *System) InBox() bool {
	if S.Box == nil {
		return true
	}
	ext, err := S.Extent()
	if err != nil {
		return true //no atoms, nothing outside
	}
	return ext[0] <= S.Box.X && ext[1] <= S.Box.Y && ext[2] <= S.Box.Z
}
