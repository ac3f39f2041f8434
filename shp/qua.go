// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape: qua4
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
//
func init() {
	var qua4 Shape
	qua4.Type = "qua4"
	qua4.Gndim = 2
	qua4.Nverts = 4
	qua4.NatCoords = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	qua4.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		S[0] = 0.25 * (1.0 - r[0]) * (1.0 - r[1])
		S[1] = 0.25 * (1.0 + r[0]) * (1.0 - r[1])
		S[2] = 0.25 * (1.0 + r[0]) * (1.0 + r[1])
		S[3] = 0.25 * (1.0 - r[0]) * (1.0 + r[1])
		if !derivs {
			return
		}
		dSdR[0][0] = -0.25 * (1.0 - r[1])
		dSdR[0][1] = -0.25 * (1.0 - r[0])
		dSdR[1][0] = 0.25 * (1.0 - r[1])
		dSdR[1][1] = -0.25 * (1.0 + r[0])
		dSdR[2][0] = 0.25 * (1.0 + r[1])
		dSdR[2][1] = 0.25 * (1.0 + r[0])
		dSdR[3][0] = -0.25 * (1.0 + r[1])
		dSdR[3][1] = 0.25 * (1.0 - r[0])
	}
	qua4.init_scratchpad()
	factory["qua4"] = &qua4
}
