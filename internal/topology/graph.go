package topology

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// dotNode adapts a Program's Node to gonum's graph.Node, dot.Node, and
// encoding.Attributer all at once, so a *simple.DirectedGraph built from
// dotNodes can be handed straight to graph/encoding/dot.Marshal and come
// out with the operator tag and parameters as edge-adjacent node labels.
type dotNode struct {
	node Node
	idx  int64
}

func (d dotNode) ID() int64                        { return d.idx }
func (d dotNode) DOTID() string                    { return d.node.ID }
func (d dotNode) Attributes() []encoding.Attribute { return d.node.Attributes() }

// Cyclic is returned by Validate when a node references an input that
// has not yet been defined — either a genuinely missing id, or one
// listed later in Program.Nodes, which in this flat, singly-traversed
// format amounts to the same violation of the topological-order
// invariant every node in the program must satisfy.
type Cyclic struct {
	NodeID, InputID string
}

func (e *Cyclic) Error() string {
	return fmt.Sprintf("topology: node %q references input %q out of topological order", e.NodeID, e.InputID)
}

// Graph builds a gonum graph.Directed view of p, edges running from
// each node to its inputs, so any tooling that already speaks gonum's
// graph interfaces (layout, traversal, cycle detection, DOT rendering
// via graph/encoding/dot.Marshal) can consume a topology program
// without a bespoke API. Node IDs are the position of each node in
// p.Nodes; use p.Nodes[id].ID for the string id.
func (p Program) Graph() graph.Directed {
	g := simple.NewDirectedGraph()
	index := make(map[string]int64, len(p.Nodes))
	for i, n := range p.Nodes {
		index[n.ID] = int64(i)
		g.AddNode(dotNode{node: n, idx: int64(i)})
	}
	for i, n := range p.Nodes {
		for _, in := range n.Inputs {
			j, ok := index[in]
			if !ok {
				continue
			}
			g.SetEdge(simple.Edge{F: g.Node(int64(i)), T: g.Node(j)})
		}
	}
	return g
}

// Dot renders p as GraphViz DOT source via graph/encoding/dot.Marshal,
// each node labelled with its operator tag and parameters through
// dotNode's encoding.Attributer implementation.
func (p Program) Dot() (string, error) {
	b, err := dot.Marshal(p.Graph(), "topology", "", "  ", false)
	if err != nil {
		return "", fmt.Errorf("topology: marshaling dot: %w", err)
	}
	return string(b), nil
}

// Validate checks the topological-order invariant directly: every input
// id referenced by a node must name a node that appears earlier in
// Program.Nodes. This is the same condition Decode enforces as a side
// effect of building its id table incrementally; Validate exists for
// callers that want to check a program without materialising an
// expression from it.
func Validate(p Program) error {
	seen := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		for _, in := range n.Inputs {
			if !seen[in] {
				return &Cyclic{NodeID: n.ID, InputID: in}
			}
		}
		seen[n.ID] = true
	}
	if p.Root != "" && !seen[p.Root] {
		return errMissingRoot(p.Root)
	}
	return nil
}
