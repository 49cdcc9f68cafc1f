package topology

import "github.com/morsefield/kernel/internal/field"

// SceneParams carries the optional numeric overrides for a named scene.
// Zero fields fall back to scene-specific defaults.
type SceneParams struct {
	OuterR, InnerR, HalfH float64
}

func (p SceneParams) withDefaults() SceneParams {
	if p.OuterR == 0 {
		p.OuterR = 1.0
	}
	if p.InnerR == 0 {
		p.InnerR = 0.6
	}
	if p.HalfH == 0 {
		p.HalfH = 1.2
	}
	if p.InnerR >= p.OuterR {
		p.InnerR = p.OuterR - 0.01
	}
	return p
}

// FromScene builds a topology program for a named scene. An unknown
// scene name defaults to a sphere of radius 0.75 rather than erroring.
func FromScene(scene string, params SceneParams) Program {
	p := params.withDefaults()
	switch scene {
	case "tube":
		prog := Encode(field.Tube(p.OuterR, p.InnerR, p.HalfH))
		prog.Signature = Signature{Betti: [3]int{1, 1, 0}, Euler: 0, Genus: 1}
		return prog
	case "gear-bushing":
		// A bushing (tube) with a flange (box), smooth-unioned: the one
		// scene in this kernel that exercises the encoder's smin node
		// kind end to end.
		bushing := field.Tube(p.OuterR, p.InnerR, p.HalfH)
		flange := field.Box(p.OuterR*3, p.OuterR*3, p.HalfH*0.5)
		prog := Encode(field.SmoothUnion(bushing, flange, 0.1))
		prog.Signature = Signature{Betti: [3]int{1, 1, 0}, Euler: 0, Genus: 1}
		return prog
	default:
		return Encode(field.Sphere(0.75))
	}
}
