// Package chain builds the segment adjacency graph across one or more
// loaded SPK kernels and walks target/observer bodies up to the
// Solar-System Barycenter, summing position and velocity contributions.
//
// Grounded on original_source/crates/jpl_kernel/src/lib.rs's
// resolve_to_ssb and planet_body_to_barycenter, generalized from a
// single kernel to a set of kernels per spec.md §4.4.
package chain

import (
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/spk"
)

// SSB is the NAIF body code for the Solar-System Barycenter.
const SSB int32 = 0

// edge names which loaded kernel supplies the segment for a body's
// center-of relation, so Resolver doesn't need to re-scan on every query.
type edge struct {
	center     int32
	kernelIdx  int
}

// Resolver holds the adjacency list built once at construction from every
// loaded kernel's segment index.
type Resolver struct {
	kernels []*spk.Kernel
	// adjacency maps a body code to the kernel that can evaluate it
	// relative to its declared center. Built greedily in kernel load
	// order: the first kernel that names a body as a target wins, as if
	// kernel_paths were searched front-to-back (spec.md's configuration
	// lists kernel_paths in priority order).
	adjacency map[int32]edge
}

// NewResolver scans every loaded kernel's segments and builds the
// body->center adjacency used by ResolveToSSB.
func NewResolver(kernels []*spk.Kernel) *Resolver {
	adjacency := make(map[int32]edge)
	for ki, k := range kernels {
		for _, seg := range k.Segments {
			if _, exists := adjacency[seg.Target]; !exists {
				adjacency[seg.Target] = edge{center: seg.Center, kernelIdx: ki}
			}
		}
	}
	return &Resolver{kernels: kernels, adjacency: adjacency}
}

// PlanetBodyToBarycenter maps a planet body code (x99) to its parent
// barycenter (x). DE kernels omit body-center segments for Mars through
// Pluto (spec.md §9's Open Question); this fallback is how those bodies
// resolve at all. Only 499 through 999 are mapped; every other code,
// including Mercury, Venus and Earth (199, 299, 399), passes through
// unchanged.
func PlanetBodyToBarycenter(code int32) int32 {
	if code >= 499 && code <= 999 && code%100 == 99 {
		return code / 100
	}
	return code
}

// State is a resolved Cartesian state relative to SSB, km and km/s.
type State struct {
	PositionKM  [3]float64
	VelocityKMS [3]float64
}

func (s *State) add(e spk.Evaluation) {
	for i := 0; i < 3; i++ {
		s.PositionKM[i] += e.PositionKM[i]
		s.VelocityKMS[i] += e.VelocityKMS[i]
	}
}

func sub(a, b State) State {
	var out State
	for i := 0; i < 3; i++ {
		out.PositionKM[i] = a.PositionKM[i] - b.PositionKM[i]
		out.VelocityKMS[i] = a.VelocityKMS[i] - b.VelocityKMS[i]
	}
	return out
}

// ResolveToSSB walks bodyCode up the center-of relation to SSB,
// accumulating position and velocity at each link. The walk never
// revisits a center; a repeated center indicates a cyclic segment graph
// and is reported as KernelInvalid (spec.md §9: "the resolver must still
// detect cycles defensively").
func (r *Resolver) ResolveToSSB(bodyCode int32, epochTDB float64) (State, error) {
	var state State
	code := bodyCode
	visited := map[int32]bool{}

	for code != SSB {
		if visited[code] {
			return State{}, &CyclicChainError{Body: code}
		}
		visited[code] = true

		e, ok := r.adjacency[code]
		if !ok {
			bary := PlanetBodyToBarycenter(code)
			if bary != code {
				code = bary
				continue
			}
			return State{}, &NoSegmentError{Body: code}
		}

		eval, err := r.kernels[e.kernelIdx].Evaluate(code, e.center, epochTDB)
		if err != nil {
			return State{}, err
		}
		state.add(eval)
		code = e.center
	}

	return state, nil
}

// ResolveRelative resolves target and observer both to SSB and returns
// target-relative-to-observer, per spec.md §4.4 steps 3-4. observer may
// be SSB itself, in which case the result is simply target's SSB-relative
// state (observer symmetry: ResolveRelative(a,b) = -ResolveRelative(b,a)).
func (r *Resolver) ResolveRelative(target, observer int32, epochTDB float64) (State, error) {
	targetState, err := r.ResolveToSSB(target, epochTDB)
	if err != nil {
		return State{}, err
	}
	if observer == SSB {
		return targetState, nil
	}
	observerState, err := r.ResolveToSSB(observer, epochTDB)
	if err != nil {
		return State{}, err
	}
	return sub(targetState, observerState), nil
}
