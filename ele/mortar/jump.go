// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/mortar/inp"
)

// Jump enforces a prescribed jump u_sec - u_mst = g(t,x) across the interface,
// with g evaluated at the physical location of the point on the secondary side.
// The offset does not depend on the dofs, hence the Jacobians are those of Tied.
type Jump struct {
	Tied
	G dbf.T // prescribed jump g(t,x)
}

// register model
func init() {
	SetModel("jump", func(edat *inp.ConstraintData, fns inp.FuncsData) (Model, error) {
		g, err := fns.Get(edat.JumpFcn)
		if err != nil {
			return nil, chk.Err("model \"jump\": cannot get jump function:\n%v", err)
		}
		return &Jump{G: g}, nil
	})
}

// QpLm returns the constraint-row integrand of side mt
func (o *Jump) QpLm(mt MortarType, s *QpState) float64 {
	if mt == Master {
		return -s.UMst * s.TestLm
	}
	return (s.USec - o.G.F(s.T, s.X)) * s.TestLm
}
