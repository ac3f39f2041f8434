// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"github.com/cpmech/mortar/inp"
)

// Tied enforces continuity of the primal field across the interface. The
// constraint row weighs the jump (u_sec - u_mst) against the lm test functions;
// the primal rows receive the multiplier flux with opposite signs.
type Tied struct{}

// register model
func init() {
	SetModel("tied", func(edat *inp.ConstraintData, fns inp.FuncsData) (Model, error) {
		return new(Tied), nil
	})
}

// QpLm returns the constraint-row integrand of side mt
func (o *Tied) QpLm(mt MortarType, s *QpState) float64 {
	if mt == Master {
		return -s.UMst * s.TestLm
	}
	return s.USec * s.TestLm
}

// QpPrimal returns the primal-row integrand of side mt
func (o *Tied) QpPrimal(mt MortarType, s *QpState) float64 {
	if mt == Master {
		return -s.Lm * s.TestMst
	}
	return s.Lm * s.TestSec
}

// QpLmJac returns ∂(QpLm)/∂u_mt[J]
func (o *Tied) QpLmJac(mt MortarType, s *QpState) float64 {
	if mt == Master {
		return -s.TrialMst * s.TestLm
	}
	return s.TrialSec * s.TestLm
}

// QpPrimalJac returns ∂(QpPrimal)/∂lm[J]
func (o *Tied) QpPrimalJac(mt MortarType, s *QpState) float64 {
	if mt == Master {
		return -s.TrialLm * s.TestMst
	}
	return s.TrialLm * s.TestSec
}
