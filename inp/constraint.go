// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from YAML interface files
package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ghodss/yaml"
)

// ConstraintData holds the definition of one mortar constraint
type ConstraintData struct {
	Type    string `json:"type"`    // constraint kind in the allocator factory; e.g. "mortar"
	Model   string `json:"model"`   // physical model name; e.g. "tied", "jump"
	LmVar   string `json:"lmvar"`   // constraint (multiplier) field name; empty means none
	SecVar  string `json:"secvar"`  // secondary primal field name
	MstVar  string `json:"mstvar"`  // master primal field name
	LmShp   string `json:"lmshp"`   // shape type of the constraint field trace; e.g. "lin2"
	Nip     int    `json:"nip"`     // number of integration points per segment; 0 means default
	Dual    bool   `json:"dual"`    // use dual (biorthogonal) basis for lm test functions
	Primal  bool   `json:"primal"`  // compute primal residual contributions
	LmRes   bool   `json:"lmres"`   // compute constraint-field residual contributions
	JumpFcn string `json:"jumpfcn"` // name of prescribed jump function (model "jump" only)
}

// InterfaceData holds the definition of one mortar interface problem
type InterfaceData struct {

	// essential
	Name        string            `json:"name"`        // name of interface problem
	Ndim        int               `json:"ndim"`        // space dimension: 2 or 3
	Coordsys    string            `json:"coordsys"`    // coordinate system: "cart" or "axisym"
	Functions   FuncsData         `json:"functions"`   // time/space functions
	Constraints []*ConstraintData `json:"constraints"` // constraint definitions

	// derived
	Path string `json:"-"` // directory path of input file
}

// ReadInterface reads an interface YAML file
func ReadInterface(dir, fnamekey string) (o *InterfaceData, err error) {

	// read file
	fn := filepath.Join(dir, fnamekey+".yml")
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read interface file %q:\n%v", fn, err)
	}

	// decode
	o = new(InterfaceData)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse interface file %q:\n%v", fn, err)
	}
	o.Path = dir

	// defaults and checks
	if o.Ndim == 0 {
		o.Ndim = 2
	}
	if o.Ndim != 2 && o.Ndim != 3 {
		return nil, chk.Err("ndim must be 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	if o.Coordsys == "" {
		o.Coordsys = "cart"
	}
	if o.Coordsys != "cart" && o.Coordsys != "axisym" {
		return nil, chk.Err("coordsys must be \"cart\" or \"axisym\". %q is invalid", o.Coordsys)
	}
	if o.Coordsys == "axisym" && o.Ndim != 2 {
		return nil, chk.Err("axisymmetric problems must have ndim=2")
	}
	if len(o.Constraints) < 1 {
		return nil, chk.Err("interface file %q has no constraints", fn)
	}
	for _, c := range o.Constraints {
		if c.Type == "" {
			c.Type = "mortar"
		}
		if c.SecVar == "" || c.MstVar == "" {
			return nil, chk.Err("constraint {type=%q, model=%q} must define both secvar and mstvar", c.Type, c.Model)
		}
	}
	return
}
