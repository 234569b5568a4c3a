/*
 * replicate.go, part of biosym.
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

// Grid holds the parameters for a replication: the number of copies along
// each axis, the gap (A) inserted between the bounding boxes of adjacent
// copies, and an optional base residue name for the replicated molecules. An
// empty BaseName keeps the original residue names.
type Grid struct {
	Nx, Ny, Nz int
	Gap        float64
	BaseName   string
}

// cells returns the total number of grid cells.
func (g Grid) cells() int {
	return g.Nx * g.Ny * g.Nz
}

// Replicate produces Nx*Ny*Nz translated copies of sys arranged on a
// rectilinear grid, with g.Gap between the bounding boxes of adjacent copies
// along each axis. The input is not modified; a new System and, if table is
// not nil, a new DataTable are returned, both re-keyed with a running 1-based
// molecule index in cell-major order (the x cell coordinate varying slowest,
// input molecule order preserved within each cell). Connectivity references
// are rewritten to the new keys; bonds never cross grid-cell boundaries, so
// an inter-molecule bond is re-linked within each copy's own cell. The
// periodic box is recomputed to enclose the whole grid, carrying the input
// angles through (90 degrees if the input was not periodic).
//
// Replicate returns an error if any grid dimension is not positive or if the
// input system has no molecules.
func Replicate(sys *System, table *DataTable, g Grid) (*System, *DataTable, error) {
	if sys == nil {
		return nil, nil, CErrorf("Replicate: nil system")
	}
	if g.Nx < 1 || g.Ny < 1 || g.Nz < 1 {
		return nil, nil, CErrorf("Replicate: grid dimensions must be positive, got %dx%dx%d", g.Nx, g.Ny, g.Nz)
	}
	n := sys.Len()
	if n == 0 {
		return nil, nil, CErrorf("Replicate: system contains no molecules")
	}
	ext, err := sys.Extent()
	if err != nil {
		return nil, nil, errDecorate(err, "Replicate")
	}
	pitch := [3]float64{ext[0] + g.Gap, ext[1] + g.Gap, ext[2] + g.Gap}

	base := g.BaseName
	if len(base) > 4 {
		base = base[:4]
	}
	//resolves the residue name a given input molecule gets in the output.
	outName := func(inputMolID int) string {
		if base != "" {
			return base
		}
		return sys.Mol(inputMolID - 1).Name
	}

	newsys := new(System)
	newsys.Header = append([]string{}, sys.Header...)
	newsys.Mols = make([]*Molecule, 0, g.cells()*n) //allocated up front, filled cell-major
	var newtab *DataTable
	if table != nil {
		newtab = NewDataTable(append([]string{}, table.Header...))
	}

	shift := v3.Zeros(1)
	cell := 0
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				shift.Set(0, 0, float64(i)*pitch[0])
				shift.Set(0, 1, float64(j)*pitch[1])
				shift.Set(0, 2, float64(k)*pitch[2])
				for mi := 0; mi < n; mi++ {
					src := sys.Mol(mi)
					mol := src.Copy()
					mol.SetID(cell*n + mi + 1)
					if base != "" {
						mol.SetName(base)
					}
					mol.Coords.AddVec(mol.Coords, shift)
					newsys.Mols = append(newsys.Mols, mol)
					if newtab == nil {
						continue
					}
					for ai, at := range mol.Atoms {
						oldkey := src.Atom(ai).Key()
						rec, ok := table.Get(oldkey)
						if !ok {
							return nil, nil, errDecorate(Consistencyf(oldkey, "atom has no record in the data table"), "Replicate")
						}
						newrec := rec.Copy()
						newrec.Key = at.Key()
						for bi, partner := range newrec.Bonds {
							if partner.MolID < 1 || partner.MolID > n {
								return nil, nil, errDecorate(Consistencyf(partner, "bond partner molecule index out of range"), "Replicate")
							}
							newrec.Bonds[bi] = AtomKey{
								MolName: outName(partner.MolID),
								MolID:   cell*n + partner.MolID,
								Name:    partner.Name,
							}
						}
						if err := newtab.Add(newrec); err != nil {
							return nil, nil, errDecorate(err, "Replicate")
						}
					}
				}
				cell++
			}
		}
	}

	newsys.Box = replicatedBox(sys.Box, g, pitch)
	if newtab != nil {
		if err := VerifyCorrespondence(newsys, newtab); err != nil {
			return nil, nil, errDecorate(err, "Replicate")
		}
	}
	return newsys, newtab, nil
}

// replicatedBox computes the periodic box enclosing the full grid: the pitch
// times the cell count along each axis. Angles are carried through from the
// input box; a non-periodic input gets a rectangular box.
func replicatedBox(in *PBC, g Grid, pitch [3]float64) *PBC {
	box := &PBC{
		X:     float64(g.Nx) * pitch[0],
		Y:     float64(g.Ny) * pitch[1],
		Z:     float64(g.Nz) * pitch[2],
		Alpha: 90.0,
		Beta:  90.0,
		Gamma: 90.0,
	}
	if in != nil {
		box.Alpha, box.Beta, box.Gamma = in.Alpha, in.Beta, in.Gamma
	}
	return box
}
