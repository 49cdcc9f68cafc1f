// Package protocol implements the text-framed, message-per-request wire
// protocol that is the kernel's one external collaborator: a tag field
// selects the request kind, and the response carries a symmetric "ok"
// tag naming the response variant, or "error" with a message. Requests
// and responses are one JSON object per line.
package protocol

import "github.com/morsefield/kernel/internal/topology"

// Request is a single line of the wire protocol. Cmd selects which of
// the other fields are meaningful: "evaluate", "gradient",
// "critical_point", and "shader" take an Expr tree;
// "shader_from_topology" and "critical_point_from_topology" take a
// Topology program instead; "topology_from_scene" takes a Scene name and
// its optional radius/height overrides.
type Request struct {
	Cmd string `json:"cmd"`

	Expr     *ExprWire         `json:"expr,omitempty"`
	Topology *topology.Program `json:"topology,omitempty"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`

	Scene  string  `json:"scene,omitempty"`
	OuterR float64 `json:"outer_r,omitempty"`
	InnerR float64 `json:"inner_r,omitempty"`
	HalfH  float64 `json:"half_h,omitempty"`
}

// Response is a single line of the wire protocol's reply. Ok names the
// response variant ("evaluate", "gradient", "critical_point", "shader",
// "topology") or is empty when Error is set.
type Response struct {
	Ok    string `json:"ok,omitempty"`
	Error string `json:"error,omitempty"`

	Value float64    `json:"value,omitempty"`
	Grad  [3]float64 `json:"grad,omitempty"`

	Found bool    `json:"found,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Z     float64 `json:"z,omitempty"`
	F     float64 `json:"f,omitempty"`
	Index int     `json:"index,omitempty"`

	Shader string `json:"shader,omitempty"`

	Topology *topology.Program `json:"topology,omitempty"`
}

func errorResponse(err error) Response {
	return Response{Error: err.Error()}
}
