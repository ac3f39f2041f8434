// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape: lin2
//
//   -1     0    +1
//    0-----------1 --> r
//
func init() {
	var lin2 Shape
	lin2.Type = "lin2"
	lin2.Gndim = 1
	lin2.Nverts = 2
	lin2.NatCoords = [][]float64{
		{-1, 1},
	}
	lin2.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		S[0] = 0.5 * (1.0 - r[0])
		S[1] = 0.5 * (1.0 + r[0])
		if !derivs {
			return
		}
		dSdR[0][0] = -0.5
		dSdR[1][0] = 0.5
	}
	lin2.init_scratchpad()
	factory["lin2"] = &lin2
}

// shape: lin3
//
//   -1     0    +1
//    0-----2-----1 --> r
//
func init() {
	var lin3 Shape
	lin3.Type = "lin3"
	lin3.Gndim = 1
	lin3.Nverts = 3
	lin3.NatCoords = [][]float64{
		{-1, 1, 0},
	}
	lin3.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		S[0] = 0.5 * r[0] * (r[0] - 1.0)
		S[1] = 0.5 * r[0] * (r[0] + 1.0)
		S[2] = 1.0 - r[0]*r[0]
		if !derivs {
			return
		}
		dSdR[0][0] = r[0] - 0.5
		dSdR[1][0] = r[0] + 0.5
		dSdR[2][0] = -2.0 * r[0]
	}
	lin3.init_scratchpad()
	factory["lin3"] = &lin3
}
