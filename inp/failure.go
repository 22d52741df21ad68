// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// failure kinds
const (
	FailHeater    = "heater_failure"          // named heat load forced to zero
	FailMli       = "mli_degradation"         // low-emissivity nodes: ε scaled by Factor
	FailCoating   = "coating_degradation_eol" // α raised by Delta on orbital-load surfaces
	FailTumble    = "attitude_loss_tumble"    // orbital loads become face-averaged custom surfaces
	FailPower     = "power_budget_reduction"  // constant and time-varying loads scaled by Factor
	FailConductor = "conductor_failure"       // named conductor loses all conductance
	FailSpike     = "component_power_spike"   // loads on a named node multiplied by SpikeFactor
)

// FailurePrms holds the parameters of a failure-mode transformation
type FailurePrms struct {
	LoadName    string  `json:"loadName"`    // heater_failure: name or id of the load
	CondName    string  `json:"condName"`    // conductor_failure: name or id of the conductor
	NodeId      string  `json:"nodeId"`      // component_power_spike: id of the loaded node
	Factor      float64 `json:"factor"`      // mli_degradation, power_budget_reduction
	Delta       float64 `json:"delta"`       // coating_degradation_eol: absorptivity increase
	SpikeFactor float64 `json:"spikeFactor"` // component_power_spike
}

// ApplyFailure deep-copies the input records and applies one named failure
// mode. The originals are never touched; the returned records are suitable
// for building a new network.
func ApplyFailure(kind string, prms *FailurePrms, nodes []*Node, conductors []*Conductor, loads []*HeatLoad) (rnodes []*Node, rconductors []*Conductor, rloads []*HeatLoad, err error) {

	rnodes = CopyNodes(nodes)
	rconductors = CopyConductors(conductors)
	rloads = CopyLoads(loads)
	if prms == nil {
		prms = new(FailurePrms)
	}

	switch kind {

	case FailHeater:
		for _, l := range rloads {
			if l.Name == prms.LoadName || l.Id == prms.LoadName {
				l.Value = 0
				for i := range l.Points {
					l.Points[i].Q = 0
				}
			}
		}

	case FailMli:
		for _, n := range rnodes {
			if n.Epsilon < 0.1 {
				n.Epsilon = min(n.Epsilon*prms.Factor, 0.99)
			}
		}

	case FailCoating:
		for _, l := range rloads {
			if l.Kind != LoadOrbital || l.Orbital == nil {
				continue
			}
			l.Orbital.Alpha = min(l.Orbital.Alpha+prms.Delta, 0.99)
			for _, n := range rnodes {
				if n.Id == l.Node {
					n.Alpha = min(n.Alpha+prms.Delta, 0.99)
				}
			}
		}

	case FailTumble:
		for _, l := range rloads {
			if l.Kind == LoadOrbital && l.Orbital != nil {
				l.Orbital.Surface = SurfCustom
				l.Orbital.Alpha /= 6.0 // average over the six faces
			}
		}

	case FailPower:
		for _, l := range rloads {
			switch l.Kind {
			case LoadConstant:
				l.Value = max(l.Value*prms.Factor, 0)
			case LoadTimeVarying:
				for i := range l.Points {
					l.Points[i].Q = max(l.Points[i].Q*prms.Factor, 0)
				}
			}
		}

	case FailConductor:
		for _, c := range rconductors {
			if c.Name == prms.CondName || c.Id == prms.CondName {
				c.Conductance = 0
				c.ViewFactor = 0
				for i := range c.Curve {
					c.Curve[i].G = 0
				}
			}
		}

	case FailSpike:
		for _, l := range rloads {
			if l.Node != prms.NodeId {
				continue
			}
			l.Value *= prms.SpikeFactor
			for i := range l.Points {
				l.Points[i].Q *= prms.SpikeFactor
			}
		}

	default:
		return nil, nil, nil, chk.Err("unknown failure kind %q", kind)
	}
	return
}
