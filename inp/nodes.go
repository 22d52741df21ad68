// Copyright 2016 The Thermosat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input records and configuration data consumed
// by the thermal network solver
package inp

// node kinds
const (
	KindDiffusion  = "diffusion"  // finite thermal capacitance; temperature evolves in time
	KindArithmetic = "arithmetic" // massless; temperature solved from instantaneous balance
	KindBoundary   = "boundary"   // temperature held at a prescribed value
)

// Node holds one thermal node record
type Node struct {

	// identity
	Id   string `json:"id"`   // unique identifier
	Name string `json:"name"` // human readable name
	Kind string `json:"kind"` // one of: diffusion, arithmetic, boundary

	// physical data
	Capacitance float64 `json:"capacitance"` // thermal capacitance C [J/K]; diffusion only
	Mass        float64 `json:"mass"`        // lumped mass [kg]; informational
	Area        float64 `json:"area"`        // surface area A [m²]
	Alpha       float64 `json:"alpha"`       // solar absorptivity α ∈ [0,1]
	Epsilon     float64 `json:"epsilon"`     // IR emissivity ε ∈ [0,1]

	// state
	T0           float64  `json:"t0"`           // initial temperature [K]; diffusion
	BoundaryTemp *float64 `json:"boundaryTemp"` // fixed temperature [K]; must be non-nil for boundary nodes
}

// IsDiffusion tells whether this node carries a time-evolving temperature.
// A diffusion node with non-positive capacitance behaves as arithmetic.
func (o *Node) IsDiffusion() bool {
	return o.Kind == KindDiffusion && o.Capacitance > 0
}

// IsArithmetic tells whether this node is solved from instantaneous balance
func (o *Node) IsArithmetic() bool {
	if o.Kind == KindArithmetic {
		return true
	}
	return o.Kind == KindDiffusion && o.Capacitance <= 0
}

// IsBoundary tells whether this node has a prescribed temperature
func (o *Node) IsBoundary() bool {
	return o.Kind == KindBoundary
}

// CopyNodes returns a deep copy of a list of node records
func CopyNodes(nodes []*Node) (res []*Node) {
	res = make([]*Node, len(nodes))
	for i, n := range nodes {
		c := *n
		if n.BoundaryTemp != nil {
			v := *n.BoundaryTemp
			c.BoundaryTemp = &v
		}
		res[i] = &c
	}
	return
}
