package protocol

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/morsefield/kernel/internal/field"
	"github.com/morsefield/kernel/internal/field/solver"
	"github.com/morsefield/kernel/internal/topology"
)

func TestExprWireRoundTrip(t *testing.T) {
	exprs := []field.Expr{
		field.Sphere(1),
		field.SmoothUnion(field.Sphere(1), field.Translate{A: field.Sphere(1), Dx: 1}, 0.2),
		field.RotateZ{A: field.X{}, Deg: 45},
	}
	for i, expr := range exprs {
		wire := ExprToWire(expr)
		data, err := json.Marshal(wire)
		if err != nil {
			t.Fatalf("expr %d: marshal failed: %v", i, err)
		}
		var decoded ExprWire
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("expr %d: unmarshal failed: %v", i, err)
		}
		back, err := decoded.ToExpr()
		if err != nil {
			t.Fatalf("expr %d: ToExpr failed: %v", i, err)
		}
		got := field.Eval(back, 0.3, 0.4, 0.5)
		want := field.Eval(expr, 0.3, 0.4, 0.5)
		if got != want {
			t.Fatalf("expr %d: round-tripped eval = %v, want %v", i, got, want)
		}
	}
}

func TestServeEvaluate(t *testing.T) {
	srv := NewServer(solver.Settings{}, nil)
	req := Request{Cmd: "evaluate", Expr: ExprToWire(field.Sphere(1)), X: 0, Y: 0, Z: 0}
	line, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := srv.Serve(strings.NewReader(string(line)+"\n"), &out); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error response: %s", resp.Error)
	}
	if resp.Ok != "evaluate" {
		t.Fatalf("Ok = %q, want evaluate", resp.Ok)
	}
	if resp.Value != -1 {
		t.Fatalf("Value = %v, want -1 (origin is inside unit sphere)", resp.Value)
	}
}

func TestServeUnknownCmd(t *testing.T) {
	srv := NewServer(solver.Settings{}, nil)
	var out bytes.Buffer
	if err := srv.Serve(strings.NewReader(`{"cmd":"bogus"}`+"\n"), &out); err != nil {
		t.Fatal(err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == "" {
		t.Fatal("expected an error response for an unknown cmd")
	}
}

func TestServeTopologyFromScene(t *testing.T) {
	srv := NewServer(solver.Settings{}, nil)
	req := Request{Cmd: "topology_from_scene", Scene: "tube"}
	line, _ := json.Marshal(req)
	var out bytes.Buffer
	if err := srv.Serve(strings.NewReader(string(line)+"\n"), &out); err != nil {
		t.Fatal(err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Topology == nil || resp.Topology.Format != topology.Format {
		t.Fatalf("response Topology = %+v, want a populated program", resp.Topology)
	}
}
