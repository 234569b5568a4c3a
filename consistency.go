/*
 * consistency.go, part of biosym.
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

// VerifyCorrespondence checks the invariant tying the two representations of
// a system together: every atom in sys has exactly one record in table and
// every record in table has exactly one atom in sys. A key present on one
// side but not the other, or present twice on the same side, yields a
// *ConsistencyError naming the first offending key.
func VerifyCorrespondence(sys *System, table *DataTable) error {
	if sys == nil || table == nil {
		return CErrorf("VerifyCorrespondence: nil system or data table")
	}
	seen := make(map[AtomKey]bool, sys.NAtoms())
	for _, k := range sys.Keys() {
		if seen[k] {
			return Consistencyf(k, "duplicate atom key in system")
		}
		seen[k] = true
		if _, ok := table.Get(k); !ok {
			return Consistencyf(k, "atom has no record in the data table")
		}
	}
	for _, k := range table.Keys() {
		if !seen[k] {
			return Consistencyf(k, "record has no atom in the system")
		}
	}
	return nil
}
