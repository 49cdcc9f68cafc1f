package topology

import "testing"

func TestNodeAttributesOpFirst(t *testing.T) {
	n := Node{ID: "n0", Op: "smin", Params: map[string]float64{"k": 0.3}}
	attrs := n.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("len(attrs) = %d, want 2", len(attrs))
	}
	if attrs[0].Key != "op" || attrs[0].Value != "smin" {
		t.Fatalf("attrs[0] = %+v, want op=smin first", attrs[0])
	}
	if attrs[1].Key != "k" || attrs[1].Value != "0.3" {
		t.Fatalf("attrs[1] = %+v, want k=0.3", attrs[1])
	}
}

func TestEqualParamsToleratesFloatNoise(t *testing.T) {
	a := map[string]float64{"r": 1.0}
	b := map[string]float64{"r": 1.0 + 1e-15}
	if !equalParams(a, b) {
		t.Fatal("equalParams rejected values within tolerance")
	}
	c := map[string]float64{"r": 1.1}
	if equalParams(a, c) {
		t.Fatal("equalParams accepted values far outside tolerance")
	}
}
