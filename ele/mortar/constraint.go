// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/mortar/ele"
	"github.com/cpmech/mortar/inp"
)

// Base implements the mortar assembly core. It combines the coupling-block index
// scheme, the residual and Jacobian assemblers and the dual-basis policy; the
// physical integrands come from the injected Model.
//
// All configuration is fixed at construction. Each call consumes one segment's
// data and accumulates into caller-owned targets; use GetCopy for per-worker
// instances when assembling segments concurrently.
type Base struct {

	// basic data
	Cid  int // constraint id
	Ndim int // space dimension

	// fields (non-owning references)
	LmVar  *ele.Var // constraint field; nil when the constraint has no multiplier
	SecVar *ele.Var // secondary primal field
	MstVar *ele.Var // master primal field

	// configuration (fixed at construction)
	Mdl   Model  // physical integrands
	Dual  bool   // use dual (biorthogonal) lm test functions
	Idx   Scheme // active coupling-block lookup
	basis Basis  // lm test-function construction policy

	// equation maps
	LmMap  []int // [nlm] global equation numbers of lm dofs
	SecMap []int // [nsec] global equation numbers of secondary dofs
	MstMap []int // [nmst] global equation numbers of master dofs

	// local contributions (scratch owned during one call; inspected by tests)
	RLm    []float64   // [nlm] constraint-row residual
	RSec   []float64   // [nsec] secondary-row residual
	RMst   []float64   // [nmst] master-row residual
	KLmSec [][]float64 // [nlm][nsec] constraint row × secondary column
	KLmMst [][]float64 // [nlm][nmst] constraint row × master column
	KSecLm [][]float64 // [nsec][nlm] secondary row × constraint column
	KMstLm [][]float64 // [nmst][nlm] master row × constraint column
}

// register constraint kind
func init() {

	// information allocator
	ele.SetInfoFunc("mortar", func(edat *inp.ConstraintData) *ele.Info {
		var info ele.Info
		if edat.LmVar != "" {
			nverts := 2
			if edat.LmShp == "lin3" {
				nverts = 3
			}
			if edat.LmShp == "qua4" {
				nverts = 4
			}
			info.Dofs = make([][]string, nverts)
			for m := 0; m < nverts; m++ {
				info.Dofs[m] = []string{edat.LmVar}
			}
			info.Y2F = map[string]string{edat.LmVar: "fl"}
		}
		return &info
	})

	// constraint allocator
	ele.SetAllocator("mortar", func(id, ndim int, edat *inp.ConstraintData, fns inp.FuncsData) (ele.Constraint, error) {
		return New(id, ndim, edat, fns)
	})
}

// New allocates a mortar constraint from its input definition.
// Configuration errors surface here, before any assembly takes place:
// requesting constraint-field residuals without a constraint field, or primal
// residuals without both primal fields, fails fast rather than computing zero.
func New(id, ndim int, edat *inp.ConstraintData, fns inp.FuncsData) (o *Base, err error) {

	// configuration checks
	if edat.LmRes && edat.LmVar == "" {
		return nil, chk.Err("constraint %d: lmres toggle requires a constraint field (lmvar)", id)
	}
	if edat.Primal && (edat.SecVar == "" || edat.MstVar == "") {
		return nil, chk.Err("constraint %d: primal toggle requires both secondary and master fields", id)
	}
	if !edat.LmRes && !edat.Primal {
		return nil, chk.Err("constraint %d: at least one residual toggle (lmres, primal) must be active", id)
	}

	// model
	mdl, err := NewModel(edat, fns)
	if err != nil {
		return nil, chk.Err("constraint %d: cannot allocate model:\n%v", id, err)
	}

	// basic data
	o = new(Base)
	o.Cid = id
	o.Ndim = ndim
	o.SecVar = &ele.Var{Name: edat.SecVar}
	o.MstVar = &ele.Var{Name: edat.MstVar}
	if edat.LmVar != "" {
		o.LmVar = &ele.Var{Name: edat.LmVar, Shp: edat.LmShp}
	}

	// configuration
	o.Mdl = mdl
	o.Dual = edat.Dual
	o.Idx = Scheme{HasLm: o.LmVar != nil, Lm: edat.LmRes, Primal: edat.Primal}
	o.basis = StdBasis{}
	if o.Dual {
		o.basis = DualBasis{}
	}
	return
}

// Id returns the constraint id
func (o *Base) Id() int { return o.Cid }

// Variable returns the constraint-field reference; nil when absent
func (o *Base) Variable() *ele.Var { return o.LmVar }

// UseDual tells whether the dual (biorthogonal) basis is enabled
func (o *Base) UseDual() bool { return o.Dual }

// SetEqs sets the global equation numbers of the three fields and allocates
// the local contribution storage
func (o *Base) SetEqs(lm, sec, mst []int) (err error) {
	if o.LmVar != nil && len(lm) < 1 {
		return chk.Err("constraint %d has a constraint field but no lm equations", o.Cid)
	}
	if len(sec) < 1 || len(mst) < 1 {
		return chk.Err("constraint %d must have secondary and master equations", o.Cid)
	}
	o.LmMap = lm
	o.SecMap = sec
	o.MstMap = mst
	nlm, nsec, nmst := len(lm), len(sec), len(mst)
	o.RSec = make([]float64, nsec)
	o.RMst = make([]float64, nmst)
	if o.LmVar != nil {
		o.RLm = make([]float64, nlm)
		o.KLmSec = la.MatAlloc(nlm, nsec)
		o.KLmMst = la.MatAlloc(nlm, nmst)
		o.KSecLm = la.MatAlloc(nsec, nlm)
		o.KMstLm = la.MatAlloc(nmst, nlm)
	}
	return
}

// GetCopy returns a copy of this constraint with fresh scratch storage,
// for concurrent assembly over disjoint segments. The equation maps were
// validated by the first SetEqs call, so a failure here is a program defect.
func (o *Base) GetCopy() (p *Base) {
	p = new(Base)
	*p = *o
	if err := p.SetEqs(o.LmMap, o.SecMap, o.MstMap); err != nil {
		chk.Panic("constraint %d: cannot copy:\n%v", o.Cid, err)
	}
	return
}

// ComputeResidual computes the local residual contributions of one segment and
// accumulates -R into the global residual vector fb.
//  Input:
//   sd        -- the segment's geometry and field values
//   hasMaster -- whether the segment projects onto the master face
//   fb        -- caller-owned global residual vector (accumulates -R)
//   sol       -- current solution (time and dof values)
func (o *Base) ComputeResidual(sd *ele.SegmentData, hasMaster bool, fb []float64, sol *ele.Solution) (err error) {

	// interpolated field values and state @ integration points
	seg := sd.Seg
	var s QpState
	s.T = sol.T
	lm := o.interp(sd.Lm, o.LmMap, sol)
	usec := o.interp(sd.Sec, o.SecMap, sol)
	var umst []float64
	if hasMaster {
		umst = o.interp(sd.Mst, o.MstMap, sol)
	}

	// constraint-row contributions
	if o.Idx.HasLm && o.Idx.Lm {
		psi := o.basis.TestValues(seg, sd.Lm.Test)
		for i := range o.RLm {
			o.RLm[i] = 0
			s.I = i
			for q := 0; q < seg.Nqp; q++ {
				o.stateAt(&s, seg, q, lm, usec, umst)
				s.TestLm = psi[i][q]
				coef := seg.JxW[q] * seg.Coord[q]
				o.RLm[i] += coef * o.Mdl.QpLm(Secondary, &s)
				if hasMaster {
					o.RLm[i] += coef * o.Mdl.QpLm(Master, &s)
				}
			}
			fb[o.LmMap[i]] -= o.RLm[i]
		}
	}

	// primal-row contributions
	if o.Idx.Primal {
		for i := range o.RSec {
			o.RSec[i] = 0
			s.I = i
			for q := 0; q < seg.Nqp; q++ {
				o.stateAt(&s, seg, q, lm, usec, umst)
				s.TestSec = sd.Sec.Test[i][q]
				o.RSec[i] += seg.JxW[q] * seg.Coord[q] * o.Mdl.QpPrimal(Secondary, &s)
			}
			fb[o.SecMap[i]] -= o.RSec[i]
		}
		if hasMaster {
			for i := range o.RMst {
				o.RMst[i] = 0
				s.I = i
				for q := 0; q < seg.Nqp; q++ {
					o.stateAt(&s, seg, q, lm, usec, umst)
					s.TestMst = sd.Mst.Test[i][q]
					o.RMst[i] += seg.JxW[q] * seg.Coord[q] * o.Mdl.QpPrimal(Master, &s)
				}
				fb[o.MstMap[i]] -= o.RMst[i]
			}
		}
	}
	return
}

// ComputeJacobian computes the local coupling blocks of one segment and
// accumulates ∂R/∂y into the global Jacobian matrix Kb. The four blocks are
// computed independently; no symmetrization is performed.
func (o *Base) ComputeJacobian(sd *ele.SegmentData, hasMaster bool, Kb *la.Triplet, sol *ele.Solution) (err error) {

	// interpolated field values and state @ integration points
	seg := sd.Seg
	var s QpState
	s.T = sol.T
	lm := o.interp(sd.Lm, o.LmMap, sol)
	usec := o.interp(sd.Sec, o.SecMap, sol)
	var umst []float64
	if hasMaster {
		umst = o.interp(sd.Mst, o.MstMap, sol)
	}

	// lm test functions (standard or dual)
	var psi [][]float64
	if o.Idx.HasLm {
		psi = o.basis.TestValues(seg, sd.Lm.Test)
	}

	// loop over active coupling blocks
	for _, b := range o.Idx.Active(hasMaster) {
		switch b {

		case LmSec:
			la.MatFill(o.KLmSec, 0)
			for i := range o.LmMap {
				for j := range o.SecMap {
					s.I, s.J = i, j
					for q := 0; q < seg.Nqp; q++ {
						o.stateAt(&s, seg, q, lm, usec, umst)
						s.TestLm = psi[i][q]
						s.TrialSec = sd.Sec.Trial[j][q]
						o.KLmSec[i][j] += seg.JxW[q] * seg.Coord[q] * o.Mdl.QpLmJac(Secondary, &s)
					}
					Kb.Put(o.LmMap[i], o.SecMap[j], o.KLmSec[i][j])
				}
			}

		case LmMst:
			la.MatFill(o.KLmMst, 0)
			for i := range o.LmMap {
				for j := range o.MstMap {
					s.I, s.J = i, j
					for q := 0; q < seg.Nqp; q++ {
						o.stateAt(&s, seg, q, lm, usec, umst)
						s.TestLm = psi[i][q]
						s.TrialMst = sd.Mst.Trial[j][q]
						o.KLmMst[i][j] += seg.JxW[q] * seg.Coord[q] * o.Mdl.QpLmJac(Master, &s)
					}
					Kb.Put(o.LmMap[i], o.MstMap[j], o.KLmMst[i][j])
				}
			}

		case SecLm:
			la.MatFill(o.KSecLm, 0)
			for i := range o.SecMap {
				for j := range o.LmMap {
					s.I, s.J = i, j
					for q := 0; q < seg.Nqp; q++ {
						o.stateAt(&s, seg, q, lm, usec, umst)
						s.TestSec = sd.Sec.Test[i][q]
						s.TrialLm = sd.Lm.Trial[j][q]
						o.KSecLm[i][j] += seg.JxW[q] * seg.Coord[q] * o.Mdl.QpPrimalJac(Secondary, &s)
					}
					Kb.Put(o.SecMap[i], o.LmMap[j], o.KSecLm[i][j])
				}
			}

		case MstLm:
			la.MatFill(o.KMstLm, 0)
			for i := range o.MstMap {
				for j := range o.LmMap {
					s.I, s.J = i, j
					for q := 0; q < seg.Nqp; q++ {
						o.stateAt(&s, seg, q, lm, usec, umst)
						s.TestMst = sd.Mst.Test[i][q]
						s.TrialLm = sd.Lm.Trial[j][q]
						o.KMstLm[i][j] += seg.JxW[q] * seg.Coord[q] * o.Mdl.QpPrimalJac(Master, &s)
					}
					Kb.Put(o.MstMap[i], o.LmMap[j], o.KMstLm[i][j])
				}
			}
		}
	}
	return
}

// stateAt fills the per-point values of the qp state
func (o *Base) stateAt(s *QpState, seg *ele.Segment, q int, lm, usec, umst []float64) {
	s.Qp = q
	s.X = seg.XSec[q]
	s.Normal = seg.Normals[q]
	s.USec = usec[q]
	s.Lm = 0
	if lm != nil {
		s.Lm = lm[q]
	}
	s.UMst = 0
	if umst != nil {
		s.UMst = umst[q]
	}
}

// interp interpolates one field's dof values to the integration points
func (o *Base) interp(fv *ele.FieldVals, eqmap []int, sol *ele.Solution) (u []float64) {
	if fv == nil || len(eqmap) == 0 {
		return
	}
	nqp := len(fv.Trial[0])
	u = make([]float64, nqp)
	for q := 0; q < nqp; q++ {
		for j, J := range eqmap {
			u[q] += fv.Trial[j][q] * sol.Y[J]
		}
	}
	return
}
