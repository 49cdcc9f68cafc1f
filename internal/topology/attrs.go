package topology

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/graph/encoding"
)

// Attributes renders n's parameter map as gonum graph/encoding
// Attributes, the same Key/Value-string shape graph/encoding/dot uses
// for node labels. This lets a topology program be dumped through any
// encoding.Attributer-consuming diagnostic (e.g. `morsefieldctl topology
// encode --dot` piping into graph/encoding/dot) without a bespoke
// key/value format of its own.
func (n Node) Attributes() []encoding.Attribute {
	keys := make([]string, 0, len(n.Params))
	for k := range n.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]encoding.Attribute, 0, len(keys)+1)
	attrs = append(attrs, encoding.Attribute{Key: "op", Value: n.Op})
	for _, k := range keys {
		attrs = append(attrs, encoding.Attribute{Key: k, Value: fmt.Sprintf("%.12g", n.Params[k])})
	}
	return attrs
}

// equalParams reports whether two parameter maps agree within
// floating-point tolerance, used by the round-trip tests to compare
// re-encoded programs without demanding bit-identical map iteration.
func equalParams(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !scalar.EqualWithinAbsOrRel(av, bv, 1e-12, 1e-12) {
			return false
		}
	}
	return true
}
