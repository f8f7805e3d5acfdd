// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "fmt"

// Mat3 is a row-major 3x3 matrix of float64 values.
type Mat3 [3][3]float64

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// MulVec returns the product of m and the column vector v.
func (m *Mat3) MulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m * o.
func (m *Mat3) Mul(o *Mat3) Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Scale returns m with every element multiplied by s.
func (m *Mat3) Scale(s float64) Mat3 {
	var r Mat3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][j] * s
		}
	}
	return r
}

// Det returns the determinant of m.
func (m *Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m, computed from its adjugate.
// It returns an error if m is singular.
func (m *Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if det == 0 {
		return Mat3{}, fmt.Errorf("cie.Mat3.Inverse: matrix is singular: %v", *m)
	}
	id := 1 / det
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * id,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * id,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * id,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * id,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * id,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * id,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * id,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * id,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * id,
		},
	}, nil
}

// MustInverse is like [Mat3.Inverse] but panics if m is singular.
// It is meant for package level matrices built from published constants.
func (m Mat3) MustInverse() Mat3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}
