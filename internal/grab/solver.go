package grab

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SolveRequest carries everything a ScaleSolver may need for one tick.
type SolveRequest struct {
	Directions   []rl.Vector3 // view-local, from Sample
	View         Pose         // current viewpoint pose
	FarDistance  float32
	HoldDistance float32
	Exclude      []BodyID
}

// ScaleSolver picks the uniform scale factor, relative to the attach-time size,
// for the held object this tick.
type ScaleSolver interface {
	Solve(req SolveRequest) (float32, error)
}

// OcclusionSolver casts one ray per sample direction and returns the largest
// scale that keeps every sampled vertex at or before the first obstruction along
// its ray.
type OcclusionSolver struct {
	Query  SpatialQuery
	Margin float32 // kept between a scaled vertex and the surface it faces
}

func NewOcclusionSolver(query SpatialQuery, margin float32) *OcclusionSolver {
	return &OcclusionSolver{Query: query, Margin: margin}
}

func (s *OcclusionSolver) Solve(req SolveRequest) (float32, error) {
	if len(req.Directions) == 0 {
		return 0, ErrNoDirections
	}

	minScale := float32(math.MaxFloat32)
	found := false
	for _, d := range req.Directions {
		length := rl.Vector3Length(d)
		if length <= 0 {
			continue
		}
		found = true

		dir := rl.Vector3Normalize(rl.Vector3RotateByQuaternion(d, req.View.Rotation))
		contribution := req.FarDistance / length
		if hit, ok := s.Query.Cast(req.View.Position, dir, req.FarDistance, req.Exclude...); ok && !hit.StartedPenetrating {
			contribution = max(hit.Distance-s.Margin, 0) / length
		}
		minScale = min(minScale, contribution)
	}
	if !found {
		return 0, ErrNoDirections
	}
	return minScale, nil
}

// FixedRatioSolver scales the object so that it appears as if held at
// TargetDistance, without checking for obstructions.
type FixedRatioSolver struct {
	TargetDistance float32
}

func (s FixedRatioSolver) Solve(req SolveRequest) (float32, error) {
	if len(req.Directions) == 0 {
		return 0, ErrNoDirections
	}
	if req.HoldDistance <= 0 {
		return 1, nil
	}
	return s.TargetDistance / req.HoldDistance, nil
}
