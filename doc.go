/*
 * doc.go, part of biosym.
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

//Package biosym provides atom, molecule and molecular-system structures for
//the paired coordinate-archive (car) and molecular-data (mdf) text formats,
//plus the two transformations that must keep both representations in sync:
//grid replication of a system and force-field-type/charge remapping.
//
//The two formats describe the same physical system and are correlated through
//a composite per-atom key (residue name, molecule index, atom name). The car
//side is parsed by the car subpackage into raw molecule blocks that the
//builder in this package lifts into a System; the mdf side is parsed by the
//mdf subpackage directly into a DataTable keyed by AtomKey. After any parse
//or transform the two sides must be in 1:1 key correspondence, which
//VerifyCorrespondence checks explicitly.
package biosym
