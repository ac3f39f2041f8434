// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mortar/inp"
)

// InfoFuncType defines a function that returns information about a certain constraint type
type InfoFuncType func(edat *inp.ConstraintData) *Info

// AllocatorType defines a function that allocates a constraint
type AllocatorType func(id, ndim int, edat *inp.ConstraintData, fns inp.FuncsData) (Constraint, error)

// GetInfo returns information about constraints from factory
func GetInfo(edat *inp.ConstraintData) (info *Info, err error) {
	fcn, ok := infofactory[edat.Type]
	if !ok {
		err = chk.Err("cannot get info for constraint {type=%q, model=%q}", edat.Type, edat.Model)
		return
	}
	info = fcn(edat)
	if info == nil {
		err = chk.Err("info for constraint {type=%q, model=%q} is not available", edat.Type, edat.Model)
	}
	return
}

// New returns a new constraint from factory
func New(id, ndim int, edat *inp.ConstraintData, fns inp.FuncsData) (c Constraint, err error) {
	fcn, ok := allocators[edat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for constraint {type=%q, model=%q}", edat.Type, edat.Model)
		return
	}
	return fcn(id, ndim, edat, fns)
}

// SetInfoFunc sets a new callback function to return information about a constraint
func SetInfoFunc(constraintName string, fcn InfoFuncType) {
	if _, ok := infofactory[constraintName]; ok {
		chk.Panic("cannot set information function for %q because constraint name exists already", constraintName)
	}
	infofactory[constraintName] = fcn
}

// SetAllocator sets a new callback function to allocate a constraint
func SetAllocator(constraintName string, fcn AllocatorType) {
	if _, ok := allocators[constraintName]; ok {
		chk.Panic("cannot set allocator function for %q because constraint name exists already", constraintName)
	}
	allocators[constraintName] = fcn
}

// infofactory holds all functions that return information about constraints
var infofactory = make(map[string]InfoFuncType)

// allocators holds all constraint allocators
var allocators = make(map[string]AllocatorType)
