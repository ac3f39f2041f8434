// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration point data: {r, s, t, w}
type Ipoint []float64

// integration points for lines
var (
	ipsLin1 = []Ipoint{
		{0, 0, 0, 2},
	}
	ipsLin2 = []Ipoint{
		{-1.0 / math.Sqrt(3.0), 0, 0, 1},
		{1.0 / math.Sqrt(3.0), 0, 0, 1},
	}
	ipsLin3 = []Ipoint{
		{-math.Sqrt(3.0 / 5.0), 0, 0, 5.0 / 9.0},
		{0, 0, 0, 8.0 / 9.0},
		{math.Sqrt(3.0 / 5.0), 0, 0, 5.0 / 9.0},
	}
)

// integration points for quadrilaterals
var (
	ipsQua4 = []Ipoint{
		{-1.0 / math.Sqrt(3.0), -1.0 / math.Sqrt(3.0), 0, 1},
		{1.0 / math.Sqrt(3.0), -1.0 / math.Sqrt(3.0), 0, 1},
		{-1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0), 0, 1},
		{1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0), 0, 1},
	}
	ipsQua9 = func() (pts []Ipoint) {
		g := []float64{-math.Sqrt(3.0 / 5.0), 0, math.Sqrt(3.0 / 5.0)}
		w := []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
		for j := 0; j < 3; j++ {
			for i := 0; i < 3; i++ {
				pts = append(pts, Ipoint{g[i], g[j], 0, w[i] * w[j]})
			}
		}
		return
	}()
)

// GetIps returns a set of integration points for this shape
//  Note: nip=0 returns the default set
func (o *Shape) GetIps(nip int) (ips []Ipoint, err error) {
	if o.Gndim == 1 {
		switch nip {
		case 0, 2:
			return ipsLin2, nil
		case 1:
			return ipsLin1, nil
		case 3:
			return ipsLin3, nil
		}
		return nil, chk.Err("cannot get %d integration points for %q", nip, o.Type)
	}
	switch nip {
	case 0, 4:
		return ipsQua4, nil
	case 9:
		return ipsQua9, nil
	}
	return nil, chk.Err("cannot get %d integration points for %q", nip, o.Type)
}
