// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data @ nodes.
//
//        / us \
//   y =  | um |
//        \ lm / (ny x 1)
//
type Solution struct {

	// current state
	T  float64   // current time
	Y  []float64 // DOFs (solution variables); e.g. y = {us, um, lm}
	ΔY []float64 // total increment (for nonlinear solver)

	// problem definition and constants
	Steady bool // [from Sim] steady simulation
	Axisym bool // [from Sim] axisymmetric
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
}
