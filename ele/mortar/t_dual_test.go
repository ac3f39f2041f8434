// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/mortar/ele"
	"github.com/cpmech/mortar/shp"
)

func Test_dual01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual01. biorthogonality and integral preservation")

	cases := []struct {
		geo string
		nip int
		x   [][]float64
	}{
		{"lin2", 2, [][]float64{
			{0, 2},
			{0, 0},
		}},
		{"lin3", 3, [][]float64{
			{0, 2, 1},
			{0, 0, 0},
		}},
		{"qua4", 4, [][]float64{
			{0, 1, 1, 0},
			{0, 0, 1, 1},
			{0, 0, 0, 0},
		}},
	}

	for _, tc := range cases {
		io.Pfblue2("geometry=%q nip=%d\n", tc.geo, tc.nip)
		s := shp.Get(tc.geo, 0)
		ips, err := s.GetIps(tc.nip)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		sd, err := ele.EvalSegment(s, s, s, tc.x, nil, ips, nil, false)
		if err != nil {
			tst.Errorf("EvalSegment failed:\n%v", err)
			return
		}
		seg := sd.Seg
		phi := sd.Lm.Test
		psi := DualBasis{}.TestValues(seg, phi)
		n := len(phi)

		for i := 0; i < n; i++ {

			// the dual functions preserve the integrals of the standard ones
			intPhi, intPsi := 0.0, 0.0
			for q := 0; q < seg.Nqp; q++ {
				w := seg.JxW[q] * seg.Coord[q]
				intPhi += w * phi[i][q]
				intPsi += w * psi[i][q]
			}
			chk.Scalar(tst, io.Sf("%s: int(psi%d)", tc.geo, i), 1e-13, intPsi, intPhi)

			// biorthogonality: int(psi_i * phi_j) is diagonal with diag = int(phi_i)
			for j := 0; j < n; j++ {
				m := 0.0
				for q := 0; q < seg.Nqp; q++ {
					m += seg.JxW[q] * seg.Coord[q] * psi[i][q] * phi[j][q]
				}
				if i == j {
					chk.Scalar(tst, io.Sf("%s: int(psi%d*phi%d)", tc.geo, i, j), 1e-13, m, intPhi)
				} else {
					chk.Scalar(tst, io.Sf("%s: int(psi%d*phi%d)", tc.geo, i, j), 1e-13, m, 0)
				}
			}
		}
	}
}

func Test_dual02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual02. standard basis is a pass-through")

	s := shp.Get("lin2", 0)
	ips, err := s.GetIps(2)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	x := [][]float64{
		{0, 2},
		{0, 0},
	}
	sd, err := ele.EvalSegment(s, s, s, x, nil, ips, nil, false)
	if err != nil {
		tst.Errorf("EvalSegment failed:\n%v", err)
		return
	}
	psi := StdBasis{}.TestValues(sd.Seg, sd.Lm.Test)
	chk.Matrix(tst, "psi", 1e-17, psi, sd.Lm.Test)
}
