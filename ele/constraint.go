// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele defines interface-constraint primitives shared by all mortar implementations
package ele

import (
	"github.com/cpmech/gosl/la"
)

// Var identifies one unknown field taking part in an interface constraint
type Var struct {
	Name string // field name; e.g. "lm", "us", "um"
	Shp  string // shape type of the field's interface trace; e.g. "lin2"
}

// Constraint defines what all mortar interface constraints must implement.
//
// ComputeResidual and ComputeJacobian are invoked once per mortar segment per
// nonlinear iteration. The accumulation targets (fb, Kb) are owned by the caller;
// with multiple workers each worker must use its own constraint instance (see
// GetCopy on concrete types) and serialize writes into shared global structures.
type Constraint interface {

	// information and initialisation
	Id() int                             // returns the constraint id
	SetEqs(lm, sec, mst []int) (err error) // set global equation numbers per field

	// read-only configuration accessors
	Variable() *Var // the constraint-field reference; nil when absent
	UseDual() bool  // whether the dual (biorthogonal) basis is enabled

	// called for each iteration, once per segment
	ComputeResidual(sd *SegmentData, hasMaster bool, fb []float64, sol *Solution) (err error)                // adds -R to global residual vector fb
	ComputeJacobian(sd *SegmentData, hasMaster bool, Kb *la.Triplet, sol *Solution) (err error) // adds coupling blocks to global Jacobian matrix Kb
}
