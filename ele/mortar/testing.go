// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/mortar/ele"
)

// Kb helps on checking coupling blocks with numerical derivatives
type Kb struct {

	// input (must)
	Tst       *testing.T       // testing structure
	Cst       *Base            // constraint being checked
	Sd        *ele.SegmentData // segment data of the fixture
	Sol       *ele.Solution    // solution fixture
	HasMaster bool             // segment projects onto master
	Tol       float64          // tolerance to compare K's
	Step      float64          // step for finite differences method
	Verb      bool             // verbose: show results
}

// Check compares one analytical block against central finite differences of the
// residual: K[i][j] must equal ∂R[Imap[i]]/∂y[Jmap[j]]
func (o *Kb) Check(label string, Imap, Jmap []int, Kana [][]float64) {
	if o.Step < 1e-14 {
		o.Step = 1e-6
	}
	derivfcn := num.DerivCen5
	fbtmp := make([]float64, len(o.Sol.Y))
	var tmp float64
	for i, I := range Imap {
		for j, J := range Jmap {
			dnum, err := derivfcn(o.Sol.Y[J], o.Step, func(x float64) (res float64, e error) {
				tmp, o.Sol.Y[J] = o.Sol.Y[J], x
				for k := range fbtmp {
					fbtmp[k] = 0
				}
				e = o.Cst.ComputeResidual(o.Sd, o.HasMaster, fbtmp, o.Sol)
				res = -fbtmp[I]
				o.Sol.Y[J] = tmp
				return
			})
			if err != nil {
				chk.Panic("testing: check: cannot compute numerical derivative:\n%v", err)
			}
			chk.AnaNum(o.Tst, io.Sf(label+"%3d%3d", i, j), o.Tol, Kana[i][j], dnum, o.Verb)
		}
	}
}
