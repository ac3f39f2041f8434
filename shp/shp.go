// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for interface (lower-dimensional) cells
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const MINJAC = 1.0e-14 // minimum surface Jacobian allowed

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data of an interface cell; i.e. a cell of intrinsic dimension
// Gndim embedded in a space of dimension Gndim+1 (lines in 2D, surfaces in 3D)
type Shape struct {

	// geometry
	Type      string      // name; e.g. "lin2"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // intrinsic dimension; e.g. "lin3" => gnd == 1 (even in 3D simulations)
	Ndim      int         // dimension of embedding space == Gndim + 1
	Nverts    int         // number of vertices in cell; e.g. "qua4" => 4
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: set by CalcAtIp
	S     []float64   // [nverts] shape functions
	DSdR  [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR  [][]float64 // [ndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	J     float64     // surface Jacobian: norm of dxdR (lines) or norm of cross product (surfaces)
	Nvec  []float64   // [ndim] unit normal vector
	Tvecs [][]float64 // [gndim][ndim] unit tangent vectors
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	var p Shape
	p.Type = o.Type
	p.Func = o.Func
	p.Gndim = o.Gndim
	p.Ndim = o.Ndim
	p.Nverts = o.Nverts
	p.NatCoords = la.MatClone(o.NatCoords)
	p.S = la.VecClone(o.S)
	p.DSdR = la.MatClone(o.DSdR)
	p.DxdR = la.MatClone(o.DxdR)
	p.J = o.J
	p.Nvec = la.VecClone(o.Nvec)
	p.Tvecs = la.MatClone(o.Tvecs)
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	y = make([]float64, o.Ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < o.Ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates interface data such as S, J, Nvec and Tvecs at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of interface cell
//   ip              -- integration point (natural coordinates)
//  Output:
//   S, DSdR, DxdR, J, Nvec, and Tvecs
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// line in 2D: tangent along curve; normal rotated -90°
	if o.Gndim == 1 {
		o.J = math.Sqrt(o.DxdR[0][0]*o.DxdR[0][0] + o.DxdR[1][0]*o.DxdR[1][0])
		if o.J < MINJAC {
			return chk.Err("surface Jacobian is too small: J = %g", o.J)
		}
		o.Tvecs[0][0] = o.DxdR[0][0] / o.J
		o.Tvecs[0][1] = o.DxdR[1][0] / o.J
		o.Nvec[0] = o.DxdR[1][0] / o.J
		o.Nvec[1] = -o.DxdR[0][0] / o.J
		return
	}

	// surface in 3D: normal from cross product of coordinate tangents
	o.Nvec[0] = o.DxdR[1][0]*o.DxdR[2][1] - o.DxdR[2][0]*o.DxdR[1][1]
	o.Nvec[1] = o.DxdR[2][0]*o.DxdR[0][1] - o.DxdR[0][0]*o.DxdR[2][1]
	o.Nvec[2] = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[1][0]*o.DxdR[0][1]
	o.J = la.VecNorm(o.Nvec)
	if o.J < MINJAC {
		return chk.Err("surface Jacobian is too small: J = %g", o.J)
	}
	for i := 0; i < 3; i++ {
		o.Nvec[i] /= o.J
	}

	// orthonormal tangents: t0 along first coordinate curve; t1 = n × t0
	a0 := math.Sqrt(o.DxdR[0][0]*o.DxdR[0][0] + o.DxdR[1][0]*o.DxdR[1][0] + o.DxdR[2][0]*o.DxdR[2][0])
	for i := 0; i < 3; i++ {
		o.Tvecs[0][i] = o.DxdR[i][0] / a0
	}
	o.Tvecs[1][0] = o.Nvec[1]*o.Tvecs[0][2] - o.Nvec[2]*o.Tvecs[0][1]
	o.Tvecs[1][1] = o.Nvec[2]*o.Tvecs[0][0] - o.Nvec[0]*o.Tvecs[0][2]
	o.Tvecs[1][2] = o.Nvec[0]*o.Tvecs[0][1] - o.Nvec[1]*o.Tvecs[0][0]
	return
}

// SurfaceGrad computes the physical tangent-plane gradient of the shape functions
// at the point set by the last CalcAtIp call (with derivatives enabled)
//  Output:
//   g[nverts][ndim] -- gradient components of each shape function
func (o *Shape) SurfaceGrad(g [][]float64) {

	// line: dS/dl along the unit tangent
	if o.Gndim == 1 {
		for n := 0; n < o.Nverts; n++ {
			for i := 0; i < o.Ndim; i++ {
				g[n][i] = o.DSdR[n][0] * o.DxdR[i][0] / (o.J * o.J)
			}
		}
		return
	}

	// surface: raise indices with the inverse metric; det(metric) == J²
	var m00, m01, m11 float64
	for i := 0; i < 3; i++ {
		m00 += o.DxdR[i][0] * o.DxdR[i][0]
		m01 += o.DxdR[i][0] * o.DxdR[i][1]
		m11 += o.DxdR[i][1] * o.DxdR[i][1]
	}
	det := o.J * o.J
	i00, i01, i11 := m11/det, -m01/det, m00/det
	for n := 0; n < o.Nverts; n++ {
		a := o.DSdR[n][0]*i00 + o.DSdR[n][1]*i01
		b := o.DSdR[n][0]*i01 + o.DSdR[n][1]*i11
		for i := 0; i < 3; i++ {
			g[n][i] = a*o.DxdR[i][0] + b*o.DxdR[i][1]
		}
	}
}

// AxisymGetRadius returns the x0 == radius for axisymmetric computations
//  Note: must be called after CalcAtIp
func (o *Shape) AxisymGetRadius(x [][]float64) (radius float64) {
	for m := 0; m < o.Nverts; m++ {
		radius += o.S[m] * x[0][m]
	}
	return
}

// init_scratchpad initialise scratchpad
func (o *Shape) init_scratchpad() {
	o.Ndim = o.Gndim + 1
	o.S = make([]float64, o.Nverts)
	o.DSdR = la.MatAlloc(o.Nverts, o.Gndim)
	o.DxdR = la.MatAlloc(o.Ndim, o.Gndim)
	o.Nvec = make([]float64, o.Ndim)
	o.Tvecs = la.MatAlloc(o.Gndim, o.Ndim)
}
