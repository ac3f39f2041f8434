// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mortar/inp"
)

// QpState gathers the values seen by a model at one integration point, for one
// (test, trial) index pair. Owned by the assembler for the duration of one call.
type QpState struct {

	// indices
	Qp   int // integration point index
	I, J int // local test and trial function indices

	// geometry and time
	T      float64   // current time
	X      []float64 // physical location of the point on the secondary side
	Normal []float64 // unit normal along the secondary face

	// interpolated field values @ this point
	Lm   float64 // constraint field; zero when absent
	USec float64 // secondary primal field
	UMst float64 // master primal field; zero when the segment has no master

	// test function values for index I (lm values already standard or dual)
	TestLm, TestSec, TestMst float64

	// trial function values for index J (lm trial is always standard)
	TrialLm, TrialSec, TrialMst float64
}

// Model implements the physical integrands of a mortar constraint, per mortar side.
// Residual routines return the integrand already multiplied by the test function of
// the corresponding row; Jacobian routines return the derivative of that integrand
// with respect to the trial dof J of the block's column field:
//   QpLm        -- constraint-row integrand, contribution of side mt
//   QpPrimal    -- primal-row integrand of side mt
//   QpLmJac     -- ∂(QpLm)/∂u_mt[J]   (blocks LmSec, LmMst)
//   QpPrimalJac -- ∂(QpPrimal)/∂lm[J] (blocks SecLm, MstLm)
type Model interface {
	QpLm(mt MortarType, s *QpState) float64
	QpPrimal(mt MortarType, s *QpState) float64
	QpLmJac(mt MortarType, s *QpState) float64
	QpPrimalJac(mt MortarType, s *QpState) float64
}

// ModelAllocator defines a function that allocates a constraint model
type ModelAllocator func(edat *inp.ConstraintData, fns inp.FuncsData) (Model, error)

// SetModel sets a new callback function to allocate a model
func SetModel(modelName string, fcn ModelAllocator) {
	if _, ok := modelAllocators[modelName]; ok {
		chk.Panic("cannot set allocator for model %q because model name exists already", modelName)
	}
	modelAllocators[modelName] = fcn
}

// NewModel allocates a model from factory
func NewModel(edat *inp.ConstraintData, fns inp.FuncsData) (mdl Model, err error) {
	fcn, ok := modelAllocators[edat.Model]
	if !ok {
		err = chk.Err("cannot find model %q", edat.Model)
		return
	}
	return fcn(edat, fns)
}

// modelAllocators holds all model allocators
var modelAllocators = make(map[string]ModelAllocator)
