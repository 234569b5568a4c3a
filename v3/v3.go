/*
 * v3.go, part of biosym.
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

//Package v3 implements a Nx3 matrix of 3D coordinates on top of
//gonum's Dense matrix. Within the package it is understood that a "vector"
//is a row vector, i.e. the cartesian coordinates of a point in 3D space.
package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of row vectors in 3D space, implemented over a gonum Dense
// matrix with 3 columns.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps a gonum Dense matrix into a Matrix. The matrix must have
// 3 columns; the function panics otherwise.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of the matrix. Changes in the view
// are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of F starting from i,j and spanning r rows and c
// columns.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

// SetMatrix puts the matrix A in the receiver, starting from the ith vector
// and jth column of the receiver. Panics on dimension mismatch.
func (F *Matrix) SetMatrix(i, j int, A *Matrix) {
	b := F.RawMatrix()
	ar, ac := A.Dims()
	fc := 3
	if ar+i > F.NVecs() || ac+j > fc {
		panic(ErrShape)
	}
	r := make([]float64, ac)
	for k := 0; k < ar; k++ {
		mat.Row(r, k, A)
		startpoint := fc*(k+i) + j
		copy(b.Data[startpoint:startpoint+ac], r)
	}
}

// SetVec sets the ith vector of the receiver to the first vector of A.
func (F *Matrix) SetVec(i int, A *Matrix) {
	for j := 0; j < 3; j++ {
		F.Set(i, j, A.At(0, j))
	}
}

// SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		vi := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, vi)
	}
}

// AddVec adds the vector vec to each vector of the matrix A, putting the
// result on the receiver. Panics if matrices are mismatched. A and the
// receiver may reference the same Matrix.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

// SubVec subtracts the vector vec from each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

// MinMax returns the per-axis minimum and maximum over all vectors of F, i.e.
// the corners of the axis-aligned bounding box of the coordinates. Panics on
// an empty matrix.
func (F *Matrix) MinMax() (min, max [3]float64) {
	v := F.NVecs()
	if v == 0 {
		panic(ErrNotEnoughElements)
	}
	for j := 0; j < 3; j++ {
		min[j] = F.At(0, j)
		max[j] = F.At(0, j)
	}
	for i := 1; i < v; i++ {
		for j := 0; j < 3; j++ {
			c := F.At(i, j)
			if c < min[j] {
				min[j] = c
			}
			if c > max[j] {
				max[j] = c
			}
		}
	}
	return min, max
}

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F)
		v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

//Errors

// Error is the error type for the v3 package. It implements biosym.Error
// without importing it, to avoid a circular dependency.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("v3: %s", err.message)
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// PanicMsg is a message used for panics. It also satisfies the error
// interface; for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("biosym/v3: a Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("biosym/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("biosym/v3: dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("biosym/v3: index out of range")
)
