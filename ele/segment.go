// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/mortar/shp"
)

// Segment holds the geometry of one mortar segment: a single integration sub-region
// of the overlap between the projected secondary face and the master face. Transient:
// recomputed every geometry update; constraints only consume one segment per call.
type Segment struct {
	Nqp      int           // number of integration points
	JxW      []float64     // [nqp] surface Jacobian times quadrature weight
	Coord    []float64     // [nqp] coordinate-system scale factor (1 for Cartesian, radius for axisymmetric)
	Normals  [][]float64   // [nqp][ndim] unit normals along the secondary face
	Tangents [][][]float64 // [nqp][gndim][ndim] unit tangents along the secondary face
	XSec     [][]float64   // [nqp][ndim] physical integration point locations on the secondary side
	XMst     [][]float64   // [nqp][ndim] physical locations on the master side; nil when the segment does not project
}

// FieldVals holds test/trial function values of one field at the integration points
// of one segment
type FieldVals struct {
	Test     [][]float64   // [nsf][nqp] test function values
	Trial    [][]float64   // [nsf][nqp] trial function values
	GradTest [][][]float64 // [nsf][nqp][ndim] tangent-plane test function gradients; nil for trace-only evaluations (lm, master)
}

// SegmentData bundles the geometry and field values consumed by one
// ComputeResidual/ComputeJacobian call
type SegmentData struct {
	Seg *Segment
	Lm  *FieldVals // constraint field values; nil when the constraint field is absent
	Sec *FieldVals // secondary primal field values
	Mst *FieldVals // master primal field values; nil when the segment does not project onto the master
}

// EvalSegment computes segment geometry and field values at the integration points.
//
// The segment coincides with the secondary face element; the mapping of integration
// points onto the master face (natural coordinates rmst, one []float64{r,s,t} per
// point) must be supplied by the caller, since mortar segment generation and
// projection are external to this core. rmst == nil means the segment does not
// project onto the master face.
//  Input:
//   lmShp      -- shape of the constraint field trace; may be nil when there is no multiplier
//   secShp     -- shape of the secondary face
//   mstShp     -- shape of the master face
//   xsec, xmst -- [ndim][nverts] coordinates of the secondary and master face elements
//   ips        -- integration points on the secondary face
//   rmst       -- [nqp][3] natural coordinates of each point projected onto the master face
//   axisym     -- axisymmetric coordinate system (scale factor = radius)
func EvalSegment(lmShp, secShp, mstShp *shp.Shape, xsec, xmst [][]float64, ips []shp.Ipoint, rmst [][]float64, axisym bool) (sd *SegmentData, err error) {

	// segment geometry from the secondary face
	nqp := len(ips)
	seg := &Segment{
		Nqp:      nqp,
		JxW:      make([]float64, nqp),
		Coord:    make([]float64, nqp),
		Normals:  la.MatAlloc(nqp, secShp.Ndim),
		Tangents: make([][][]float64, nqp),
		XSec:     la.MatAlloc(nqp, secShp.Ndim),
	}
	if rmst != nil {
		if len(rmst) != nqp {
			return nil, chk.Err("number of master natural coordinates (%d) does not match number of integration points (%d)", len(rmst), nqp)
		}
		seg.XMst = la.MatAlloc(nqp, secShp.Ndim)
	}

	// field values; only the secondary field gets gradients (the constraint and
	// master fields enter the integrands through their traces alone)
	sec := newFieldVals(secShp.Nverts, nqp)
	sec.GradTest = utl.Deep3alloc(secShp.Nverts, nqp, secShp.Ndim)
	grad := la.MatAlloc(secShp.Nverts, secShp.Ndim)
	var lm, mst *FieldVals
	if lmShp != nil {
		lm = newFieldVals(lmShp.Nverts, nqp)
	}
	if rmst != nil {
		mst = newFieldVals(mstShp.Nverts, nqp)
	}

	// loop over integration points
	for q, ip := range ips {

		// secondary face geometry
		err = secShp.CalcAtIp(xsec, ip, true)
		if err != nil {
			return
		}
		seg.JxW[q] = secShp.J * ip[3]
		seg.Coord[q] = 1.0
		if axisym {
			seg.Coord[q] = secShp.AxisymGetRadius(xsec)
		}
		copy(seg.Normals[q], secShp.Nvec)
		seg.Tangents[q] = la.MatClone(secShp.Tvecs)
		secShp.SurfaceGrad(grad)
		for n := 0; n < secShp.Nverts; n++ {
			sec.Test[n][q] = secShp.S[n]
			copy(sec.GradTest[n][q], grad[n])
			for i := 0; i < secShp.Ndim; i++ {
				seg.XSec[q][i] += secShp.S[n] * xsec[i][n]
			}
		}

		// constraint field trace
		if lmShp != nil {
			lmShp.Func(lmShp.S, lmShp.DSdR, ip, false)
			for n := 0; n < lmShp.Nverts; n++ {
				lm.Test[n][q] = lmShp.S[n]
			}
		}

		// master side
		if rmst != nil {
			mstShp.Func(mstShp.S, mstShp.DSdR, rmst[q], false)
			for n := 0; n < mstShp.Nverts; n++ {
				mst.Test[n][q] = mstShp.S[n]
				for i := 0; i < mstShp.Ndim; i++ {
					seg.XMst[q][i] += mstShp.S[n] * xmst[i][n]
				}
			}
		}
	}
	sd = &SegmentData{Seg: seg, Lm: lm, Sec: sec, Mst: mst}
	return
}

// newFieldVals allocates field values with trial aliasing test (Galerkin)
func newFieldVals(nsf, nqp int) *FieldVals {
	v := la.MatAlloc(nsf, nqp)
	return &FieldVals{Test: v, Trial: v}
}
