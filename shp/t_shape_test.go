// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. shape functions and derivatives")

	r := []float64{0.2, 0.3, 0.0}
	for name := range factory {
		io.Pf("%v\n", name)
		shape := Get(name, 0)
		if shape == nil {
			tst.Errorf("cannot get shape %q\n", name)
			return
		}
		CheckShape(tst, shape, 1e-17, chk.Verbose)
		CheckDSdR(tst, shape, r, 1e-9, chk.Verbose)
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. line normal and tangent in 2D")

	// inclined lin2 segment: from (0,0) to (3,4); length 5
	lin2 := Get("lin2", 0)
	x := [][]float64{
		{0, 3},
		{0, 4},
	}
	ips, err := lin2.GetIps(2)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	for _, ip := range ips {
		err = lin2.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		chk.Scalar(tst, "J", 1e-15, lin2.J, 2.5) // half-length
		chk.Vector(tst, "tangent", 1e-15, lin2.Tvecs[0], []float64{0.6, 0.8})
		chk.Vector(tst, "normal", 1e-15, lin2.Nvec, []float64{0.8, -0.6})
		chk.Scalar(tst, "n·t", 1e-15, lin2.Nvec[0]*lin2.Tvecs[0][0]+lin2.Nvec[1]*lin2.Tvecs[0][1], 0)
	}

	// total length from quadrature
	length := 0.0
	for _, ip := range ips {
		lin2.CalcAtIp(x, ip, true)
		length += ip[3] * lin2.J
	}
	chk.Scalar(tst, "length", 1e-14, length, 5.0)
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. lin3 quadrature integrates x² exactly")

	// straight lin3 from x=0 to x=2 with middle node at x=1
	lin3 := Get("lin3", 0)
	x := [][]float64{
		{0, 2, 1},
		{0, 0, 0},
	}
	ips, err := lin3.GetIps(3)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}

	// ∫ x² dx over [0,2] = 8/3
	res := 0.0
	for _, ip := range ips {
		err = lin3.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		y := lin3.IpRealCoords(x, ip)
		res += ip[3] * lin3.J * y[0] * y[0]
	}
	chk.Scalar(tst, "∫x²dx", 1e-14, res, 8.0/3.0)
}

func Test_shape04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape04. qua4 normal and area in 3D")

	// unit square in the x-y plane @ z=1
	qua4 := Get("qua4", 0)
	x := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
	}
	ips, _ := qua4.GetIps(4)
	area := 0.0
	for _, ip := range ips {
		err := qua4.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		chk.Vector(tst, "normal", 1e-15, qua4.Nvec, []float64{0, 0, 1})
		dot := 0.0
		for i := 0; i < 3; i++ {
			dot += qua4.Tvecs[0][i] * qua4.Tvecs[1][i]
		}
		chk.Scalar(tst, "t0·t1", 1e-15, dot, 0)
		area += ip[3] * qua4.J
	}
	chk.Scalar(tst, "area", 1e-14, area, 1.0)
}

func Test_shape05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape05. tangent-plane gradient reproduces linear fields")

	// inclined lin2 from (0,0) to (3,4); nodal values of u = x + 2y
	lin2 := Get("lin2", 0)
	x := [][]float64{
		{0, 3},
		{0, 4},
	}
	u := []float64{0, 11}
	ips, _ := lin2.GetIps(2)
	grad := make([][]float64, lin2.Nverts)
	for n := range grad {
		grad[n] = make([]float64, lin2.Ndim)
	}
	for _, ip := range ips {
		err := lin2.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		lin2.SurfaceGrad(grad)
		gu := make([]float64, 2)
		for n := 0; n < lin2.Nverts; n++ {
			for i := 0; i < 2; i++ {
				gu[i] += grad[n][i] * u[n]
			}
		}
		// projection of (1,2) onto the unit tangent (0.6,0.8): magnitude 2.2
		chk.Vector(tst, "grad(u)", 1e-14, gu, []float64{1.32, 1.76})
	}

	// qua4 unit square in the x-y plane; u = x + 2y is reproduced exactly
	qua4 := Get("qua4", 0)
	xq := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	}
	uq := []float64{0, 1, 3, 2}
	ipsq, _ := qua4.GetIps(4)
	gradq := make([][]float64, qua4.Nverts)
	for n := range gradq {
		gradq[n] = make([]float64, qua4.Ndim)
	}
	for _, ip := range ipsq {
		err := qua4.CalcAtIp(xq, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		qua4.SurfaceGrad(gradq)
		gu := make([]float64, 3)
		for n := 0; n < qua4.Nverts; n++ {
			for i := 0; i < 3; i++ {
				gu[i] += gradq[n][i] * uq[n]
			}
		}
		chk.Vector(tst, "grad(u)", 1e-14, gu, []float64{1, 2, 0})
	}
}
