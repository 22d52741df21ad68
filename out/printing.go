// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/acanino561/thermosat-sub000/sol"
	"github.com/cpmech/gosl/io"
)

// Summary formats a compact table of a run: one line per node with its
// final temperature, followed by convergence data
func Summary(res *sol.Results) (l string) {
	var ids []string
	for id := range res.NodeTemps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	np := len(res.Times)
	if np > 0 {
		l += io.Sf("time points = %d  [%g, %g]\n", np, res.Times[0], res.Times[np-1])
	}
	for _, id := range ids {
		series := res.NodeTemps[id]
		if len(series) == 0 {
			continue
		}
		l += io.Sf("%-20s T = %10.3f K\n", id, series[len(series)-1])
	}
	l += io.Sf("converged = %v  iterations = %d  energy error = %g\n", res.Converged, res.Iterations, res.EnergyErr)
	return
}

// EnergyTable formats an energy balance report
func EnergyTable(rep *sol.EnergyReport) (l string) {
	l += io.Sf("stored      ΔE    = %15.6e J\n", rep.Stored)
	l += io.Sf("external    E_in  = %15.6e J\n", rep.External)
	l += io.Sf("boundary    E_bnd = %15.6e J\n", rep.Boundary)
	l += io.Sf("relative error    = %g\n", rep.RelErr)
	l += io.Sf("balanced          = %v\n", rep.IsBalanced)
	return
}
