/*
 * builder.go, part of biosym.
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
	v3 "github.com/rmera/biosym/v3"
)

// RawAtom is one atom record as read from a coordinate archive, before the
// structural lift into a Molecule. The MolID field carries whatever index the
// file declared; the builder assigns the authoritative 1-based index from the
// block position.
type RawAtom struct {
	Name    string
	X, Y, Z float64
	MolName string
	MolID   int
	FFType  string
	Symbol  string
	Charge  float64
}

// RawMolecule is the ordered sequence of atom records between a molecule
// start and its terminator, in file order. Any reader that produces these
// blocks (the car reader, or a collaborator reading a third format) can feed
// MoleculesFromBlocks.
type RawMolecule struct {
	Atoms []RawAtom
}

// MoleculesFromBlocks converts raw archive blocks into molecules, assigning
// each molecule the 1-based index of its block and deriving atom names
// directly from the records. This is a structural lift only: no geometry or
// connectivity is invented here. Atom order within each molecule equals block
// order, and molecule count equals block count.
func MoleculesFromBlocks(blocks []*RawMolecule) ([]*Molecule, error) {
	mols := make([]*Molecule, 0, len(blocks))
	for i, b := range blocks {
		if len(b.Atoms) == 0 {
			return nil, CErrorf("MoleculesFromBlocks: block %d contains no atoms", i+1)
		}
		mol := new(Molecule)
		mol.ID = i + 1
		mol.Name = b.Atoms[0].MolName
		mol.Atoms = make([]*Atom, 0, len(b.Atoms))
		data := make([]float64, 0, len(b.Atoms)*3)
		for _, ra := range b.Atoms {
			at := &Atom{
				Name:    ra.Name,
				MolName: ra.MolName,
				MolID:   i + 1,
				FFType:  ra.FFType,
				Symbol:  ra.Symbol,
				Charge:  ra.Charge,
			}
			at.Mass, _ = SymbolMass(ra.Symbol) //unknown symbols just keep mass 0
			mol.Atoms = append(mol.Atoms, at)
			data = append(data, ra.X, ra.Y, ra.Z)
		}
		coords, err := v3.NewMatrix(data)
		if err != nil {
			return nil, errDecorate(err, "MoleculesFromBlocks")
		}
		mol.Coords = coords
		mols = append(mols, mol)
	}
	return mols, nil
}

// SystemFromBlocks lifts raw blocks into a full System, carrying the verbatim
// header and the optional periodic box through.
func SystemFromBlocks(header []string, blocks []*RawMolecule, box *PBC) (*System, error) {
	mols, err := MoleculesFromBlocks(blocks)
	if err != nil {
		return nil, errDecorate(err, "SystemFromBlocks")
	}
	return NewSystem(header, mols, box)
}
