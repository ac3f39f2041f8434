// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/mortar/ele"
)

// Basis builds the constraint-field test function values for one segment.
// The assemblers obtain lm test functions only through this interface; toggling
// the dual flag changes the values, never the calling sequence.
type Basis interface {
	TestValues(seg *ele.Segment, std [][]float64) [][]float64
}

// StdBasis returns the standard (trial-equal) test functions
type StdBasis struct{}

// TestValues returns the standard values unchanged
func (o StdBasis) TestValues(seg *ele.Segment, std [][]float64) [][]float64 {
	return std
}

// DualBasis builds biorthogonal test functions
//
//   ψ_i = Σ_k A_ik φ_k   with  A = diag(d)·M⁻¹
//   M_kj = ∫ φ_k φ_j dΓ   and  d_k = ∫ φ_k dΓ
//
// so that ∫ ψ_i φ_j dΓ is diagonal while ∫ ψ_i dΓ = ∫ φ_i dΓ is preserved.
// Integrals use the segment quadrature (weight = JxW·Coord).
type DualBasis struct{}

// TestValues computes the biorthogonal values at the segment's integration points.
// The segment mass matrix must be invertible; i.e. the quadrature must have at
// least as many points as there are lm shape functions.
func (o DualBasis) TestValues(seg *ele.Segment, std [][]float64) [][]float64 {

	// segment mass matrix and basis integrals
	n := len(std)
	M := mat.NewDense(n, n, nil)
	d := make([]float64, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			mkj := 0.0
			for q := 0; q < seg.Nqp; q++ {
				mkj += seg.JxW[q] * seg.Coord[q] * std[k][q] * std[j][q]
			}
			M.Set(k, j, mkj)
		}
		for q := 0; q < seg.Nqp; q++ {
			d[k] += seg.JxW[q] * seg.Coord[q] * std[k][q]
		}
	}

	// A = diag(d)·M⁻¹
	var Mi mat.Dense
	if err := Mi.Inverse(M); err != nil {
		chk.Panic("dual basis: cannot invert segment mass matrix:\n%v", err)
	}

	// ψ = A·φ
	psi := la.MatAlloc(n, seg.Nqp)
	for i := 0; i < n; i++ {
		for q := 0; q < seg.Nqp; q++ {
			for k := 0; k < n; k++ {
				psi[i][q] += d[i] * Mi.At(i, k) * std[k][q]
			}
		}
	}
	return psi
}
