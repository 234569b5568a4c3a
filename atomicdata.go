/*
 * atomicdata.go, part of biosym.
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

//A map for assigning mass to elements.
//Note that just common elements for organic and biological
//systems are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  19.00,
	"Na": 22.99,
	"Mg": 24.30,
	"Si": 28.09,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.90,
	"I":  126.90,
}

// SymbolMass returns the atomic mass for the given element symbol, or 0 and
// false if the symbol is not in the table. Missing masses are not an error,
// they just stay at 0 on the atom.
func SymbolMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}
