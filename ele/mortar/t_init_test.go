// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/mortar/ele"
	"github.com/cpmech/mortar/inp"
	"github.com/cpmech/mortar/shp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testFns holds the functions used by the "jump" model fixtures
var testFns = inp.FuncsData{
	&inp.FuncData{Name: "gap", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 0.25}}},
}

// testEdat returns a constraint definition for fixtures
func testEdat(model string, dual, primal, lmres bool, nip int) *inp.ConstraintData {
	return &inp.ConstraintData{
		Type: "mortar", Model: model,
		LmVar: "lm", SecVar: "us", MstVar: "um", LmShp: "lin2",
		Nip: nip, Dual: dual, Primal: primal, LmRes: lmres,
		JumpFcn: "gap",
	}
}

// fixture builds a single-segment fixture in 2D with two overlapping lin2 faces:
// the secondary face runs from (0,0) to (2,0) and the master face covers the same
// physical span with reversed orientation. Equations: us={0,1}, um={2,3}, lm={4,5}.
func fixture(edat *inp.ConstraintData, hasMaster bool) (c *Base, sd *ele.SegmentData, sol *ele.Solution, err error) {

	// constraint
	c, err = New(0, 2, edat, testFns)
	if err != nil {
		return
	}
	var lmEqs []int
	if edat.LmVar != "" {
		lmEqs = utl.IntRange2(4, 6)
	}
	err = c.SetEqs(lmEqs, utl.IntRange2(0, 2), utl.IntRange2(2, 4))
	if err != nil {
		return
	}

	// geometry
	lin2 := shp.Get("lin2", 0)
	xsec := [][]float64{
		{0, 2},
		{0, 0},
	}
	xmst := [][]float64{
		{2, 0},
		{0, 0},
	}
	ips, err := lin2.GetIps(edat.Nip)
	if err != nil {
		return
	}

	// projection onto the reversed master face: rm = -r
	var rmst [][]float64
	if hasMaster {
		rmst = make([][]float64, len(ips))
		for q, ip := range ips {
			rmst[q] = []float64{-ip[0], 0, 0}
		}
	}

	// segment data
	var lmShp *shp.Shape
	if edat.LmVar != "" {
		lmShp = shp.Get(edat.LmShp, 0)
	}
	sd, err = ele.EvalSegment(lmShp, lin2, lin2, xsec, xmst, ips, rmst, false)
	if err != nil {
		return
	}

	// solution with non-trivial dof values
	sol = &ele.Solution{
		T:      1.0,
		Y:      []float64{0.1, 0.3, -0.2, 0.4, 0.5, -0.1},
		ΔY:     make([]float64, 6),
		Steady: true,
	}
	return
}
