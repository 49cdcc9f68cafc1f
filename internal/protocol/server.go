package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/morsefield/kernel/internal/field"
	"github.com/morsefield/kernel/internal/field/shader"
	"github.com/morsefield/kernel/internal/field/solver"
	"github.com/morsefield/kernel/internal/topology"
)

// Server dispatches decoded Requests against the kernel packages. It
// holds no mutable state of its own beyond the solver defaults, so a
// single Server can be shared across concurrently read connections.
type Server struct {
	Settings solver.Settings
	Log      *zap.Logger
}

// NewServer builds a Server with the given solver settings. log may be
// nil, in which case request handling is silent.
func NewServer(settings solver.Settings, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{Settings: settings, Log: log}
}

// Serve reads one JSON request per line from r and writes one JSON
// response per line to w, until r is exhausted or returns an error. A
// malformed line yields an error Response rather than terminating the
// loop, so one bad request doesn't kill the connection.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	enc := json.NewEncoder(w)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		resp := func() Response {
			if err := json.Unmarshal(line, &req); err != nil {
				return errorResponse(fmt.Errorf("protocol: malformed request: %w", err))
			}
			return s.dispatch(req)
		}()
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *Server) dispatch(req Request) Response {
	s.Log.Debug("dispatch", zap.String("cmd", req.Cmd))
	switch req.Cmd {
	case "evaluate":
		return s.evaluate(req)
	case "gradient":
		return s.gradient(req)
	case "critical_point":
		return s.criticalPoint(req)
	case "shader":
		return s.shader(req)
	case "topology_from_scene":
		return s.topologyFromScene(req)
	case "shader_from_topology":
		return s.shaderFromTopology(req)
	case "critical_point_from_topology":
		return s.criticalPointFromTopology(req)
	default:
		return errorResponse(fmt.Errorf("protocol: unknown cmd %q", req.Cmd))
	}
}

func (s *Server) exprFromRequest(req Request) (field.Expr, error) {
	if req.Expr == nil {
		return nil, fmt.Errorf("protocol: cmd %q requires \"expr\"", req.Cmd)
	}
	return req.Expr.ToExpr()
}

func (s *Server) evaluate(req Request) Response {
	expr, err := s.exprFromRequest(req)
	if err != nil {
		return errorResponse(err)
	}
	return Response{Ok: "evaluate", Value: field.Eval(expr, req.X, req.Y, req.Z)}
}

func (s *Server) gradient(req Request) Response {
	expr, err := s.exprFromRequest(req)
	if err != nil {
		return errorResponse(err)
	}
	f, g := field.Gradient(expr, req.X, req.Y, req.Z)
	return Response{Ok: "gradient", Value: f, Grad: [3]float64{g.X, g.Y, g.Z}}
}

func (s *Server) criticalPoint(req Request) Response {
	expr, err := s.exprFromRequest(req)
	if err != nil {
		return errorResponse(err)
	}
	return s.refineResponse(expr, req.X, req.Y, req.Z)
}

func (s *Server) refineResponse(expr field.Expr, x, y, z float64) Response {
	p, ok := solver.Refine(expr, x, y, z, s.Settings)
	if !ok {
		return Response{Ok: "critical_point", Found: false}
	}
	return Response{Ok: "critical_point", Found: true, X: p.X, Y: p.Y, Z: p.Z, F: p.F, Index: p.Index}
}

func (s *Server) shader(req Request) Response {
	expr, err := s.exprFromRequest(req)
	if err != nil {
		return errorResponse(err)
	}
	return Response{Ok: "shader", Shader: shader.Emit(expr)}
}

func (s *Server) topologyFromScene(req Request) Response {
	prog := topology.FromScene(req.Scene, topology.SceneParams{OuterR: req.OuterR, InnerR: req.InnerR, HalfH: req.HalfH})
	return Response{Ok: "topology", Topology: &prog}
}

func (s *Server) exprFromTopology(req Request) (field.Expr, error) {
	if req.Topology == nil {
		return nil, fmt.Errorf("protocol: cmd %q requires \"topology\"", req.Cmd)
	}
	return topology.Decode(*req.Topology)
}

func (s *Server) shaderFromTopology(req Request) Response {
	expr, err := s.exprFromTopology(req)
	if err != nil {
		return errorResponse(err)
	}
	return Response{Ok: "shader", Shader: shader.Emit(expr)}
}

func (s *Server) criticalPointFromTopology(req Request) Response {
	expr, err := s.exprFromTopology(req)
	if err != nil {
		return errorResponse(err)
	}
	return s.refineResponse(expr, req.X, req.Y, req.Z)
}
