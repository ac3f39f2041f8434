// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mortar implements the assembly core of mortar interface constraints:
// the coupling-block index scheme, the residual and Jacobian assemblers, the
// dual-basis policy and the physical constraint models
package mortar

// MortarType selects which side of the mortar interface a routine operates on
type MortarType int

const (
	Secondary MortarType = iota // the secondary (projected) side
	Master                      // the master side
)

// Block identifies one of the four coupling blocks between the constraint field
// (lm) and the two primal fields.
//
// Indexing:
//
//               u_mst          u_sec           lm
//          +--------------+--------------+--------------+
//   u_mst  |  (external)  |              |    MstLm     |
//          +--------------+--------------+--------------+
//   u_sec  |              |  (external)  |    SecLm     |
//          +--------------+--------------+--------------+
//   lm     |    LmMst     |    LmSec     |              |
//          +--------------+--------------+--------------+
//
// The primal diagonal blocks are driven by external volume kernels, not here.
type Block int

const (
	LmSec Block = iota // constraint row × secondary column
	LmMst              // constraint row × master column
	SecLm              // secondary row × constraint column
	MstLm              // master row × constraint column
)

// String returns the block label
func (b Block) String() string {
	switch b {
	case LmSec:
		return "KLmSec"
	case LmMst:
		return "KLmMst"
	case SecLm:
		return "KSecLm"
	case MstLm:
		return "KMstLm"
	}
	return "unknown"
}

// Scheme reports which coupling blocks are active, given field presence, the two
// residual toggles and the per-segment projection flag. Pure lookup; both
// assemblers consult it every call.
type Scheme struct {
	HasLm  bool // the constraint field is present
	Lm     bool // compute constraint-field contributions
	Primal bool // compute primal-field contributions
}

// Active returns the active coupling blocks, in fixed order.
// Without a constraint field there are no constraint-touching blocks,
// regardless of the toggles.
func (o Scheme) Active(hasMaster bool) (blocks []Block) {
	if !o.HasLm {
		return
	}
	if o.Lm {
		blocks = append(blocks, LmSec)
		if hasMaster {
			blocks = append(blocks, LmMst)
		}
	}
	if o.Primal {
		blocks = append(blocks, SecLm)
		if hasMaster {
			blocks = append(blocks, MstLm)
		}
	}
	return
}
