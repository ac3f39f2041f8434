// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mortar

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mortar/ele"
	"github.com/cpmech/mortar/inp"
)

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. allocation from interface file")

	// read interface definition
	ifd, err := inp.ReadInterface("../../inp/data", "tied")
	if err != nil {
		tst.Errorf("ReadInterface failed:\n%v", err)
		return
	}
	chk.IntAssert(len(ifd.Constraints), 2)

	// information: one lm dof per interface node of the lin2 trace
	info, err := ele.GetInfo(ifd.Constraints[0])
	if err != nil {
		tst.Errorf("GetInfo failed:\n%v", err)
		return
	}
	chk.IntAssert(len(info.Dofs), 2)
	chk.Strings(tst, "dofs @ node 0", info.Dofs[0], []string{"lm"})
	chk.Strings(tst, "dofs @ node 1", info.Dofs[1], []string{"lm"})
	chk.StrAssert(info.Y2F["lm"], "fl")

	// allocation through the factory
	for i, edat := range ifd.Constraints {
		c, err := ele.New(i, ifd.Ndim, edat, ifd.Functions)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		chk.IntAssert(c.Id(), i)
		chk.StrAssert(c.Variable().Name, "lm")
		if c.UseDual() != edat.Dual {
			tst.Errorf("allocated constraint does not honour the dual flag\n")
			return
		}
	}

	// unknown constraint kinds must fail
	bad := &inp.ConstraintData{Type: "rigid", SecVar: "us", MstVar: "um"}
	if _, err := ele.New(0, 2, bad, ifd.Functions); err == nil {
		tst.Errorf("New must fail for unknown constraint kinds\n")
		return
	}
	if _, err := ele.GetInfo(bad); err == nil {
		tst.Errorf("GetInfo must fail for unknown constraint kinds\n")
		return
	}
}
