// Copyright 2017 The Mortar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to set a simulation stage
type Info struct {

	// essential
	Dofs [][]string        // solution variables PER INTERFACE NODE. ex for 2 nodes: [["lm"], ["lm"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "lm" => "fl"

	// t1 variables (time-derivatives of first order)
	T1vars []string // e.g. "lm" for rate-type constraints
}
