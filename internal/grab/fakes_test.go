package grab

import (
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeBody is a sphere collider with a list of local-space surface vertices.
type fakeBody struct {
	pose       Pose
	scale      rl.Vector3
	radius     float32
	mobility   Mobility
	simulating bool
	verts      []rl.Vector3
}

// plane blocks rays travelling along +axis at dot(p, axis) == offset.
type plane struct {
	axis   rl.Vector3
	offset float32
	body   BodyID
}

type fakeWorld struct {
	bodies   map[BodyID]*fakeBody
	planes   []plane
	setPoses map[BodyID]int
	casts    int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		bodies:   make(map[BodyID]*fakeBody),
		setPoses: make(map[BodyID]int),
	}
}

func (w *fakeWorld) addSphere(id BodyID, center rl.Vector3, radius float32, verts ...rl.Vector3) *fakeBody {
	b := &fakeBody{
		pose:       Pose{Position: center, Rotation: rl.QuaternionIdentity()},
		scale:      rl.Vector3One(),
		radius:     radius,
		mobility:   Movable,
		simulating: true,
		verts:      verts,
	}
	w.bodies[id] = b
	return b
}

func (w *fakeWorld) addWall(id BodyID, axis rl.Vector3, offset float32) {
	w.planes = append(w.planes, plane{axis: axis, offset: offset, body: id})
}

func (w *fakeWorld) Cast(origin, direction rl.Vector3, maxDistance float32, exclude ...BodyID) (Hit, bool) {
	w.casts++
	dir := rl.Vector3Normalize(direction)
	best := Hit{Distance: float32(math.MaxFloat32)}
	found := false

	for id, b := range w.bodies {
		if b.radius <= 0 || slices.Contains(exclude, id) {
			continue
		}
		r := b.radius * b.scale.X
		oc := rl.Vector3Subtract(origin, b.pose.Position)
		c := rl.Vector3DotProduct(oc, oc) - r*r
		if c <= 0 {
			return Hit{Body: id, Point: origin, StartedPenetrating: true}, true
		}
		half := rl.Vector3DotProduct(oc, dir)
		disc := half*half - c
		if disc < 0 {
			continue
		}
		t := -half - float32(math.Sqrt(float64(disc)))
		if t < 0 || t > maxDistance || t >= best.Distance {
			continue
		}
		point := rl.Vector3Add(origin, rl.Vector3Scale(dir, t))
		best = Hit{Body: id, Distance: t, Point: point, Normal: rl.Vector3Normalize(rl.Vector3Subtract(point, b.pose.Position))}
		found = true
	}

	for _, p := range w.planes {
		if slices.Contains(exclude, p.body) {
			continue
		}
		denom := rl.Vector3DotProduct(dir, p.axis)
		if denom <= 0 {
			continue
		}
		t := (p.offset - rl.Vector3DotProduct(origin, p.axis)) / denom
		if t < 0 || t > maxDistance || t >= best.Distance {
			continue
		}
		best = Hit{Body: p.body, Distance: t, Point: rl.Vector3Add(origin, rl.Vector3Scale(dir, t)), Normal: rl.Vector3Negate(p.axis)}
		found = true
	}
	return best, found
}

func (w *fakeWorld) Valid(id BodyID) bool {
	if _, ok := w.bodies[id]; ok {
		return true
	}
	for _, p := range w.planes {
		if p.body == id {
			return true
		}
	}
	return false
}

func (w *fakeWorld) Pose(id BodyID) Pose {
	if b, ok := w.bodies[id]; ok {
		return b.pose
	}
	return Pose{Rotation: rl.QuaternionIdentity()}
}

func (w *fakeWorld) Scale(id BodyID) rl.Vector3 {
	if b, ok := w.bodies[id]; ok {
		return b.scale
	}
	return rl.Vector3One()
}

func (w *fakeWorld) SetPose(id BodyID, position rl.Vector3, rotation rl.Quaternion, scale rl.Vector3) {
	w.setPoses[id]++
	if b, ok := w.bodies[id]; ok {
		b.pose = Pose{Position: position, Rotation: rotation}
		b.scale = scale
	}
}

func (w *fakeWorld) SimulatingPhysics(id BodyID) bool {
	if b, ok := w.bodies[id]; ok {
		return b.simulating
	}
	return false
}

func (w *fakeWorld) SetSimulatingPhysics(id BodyID, simulate bool) {
	if b, ok := w.bodies[id]; ok {
		b.simulating = simulate
	}
}

// Walls are always static.
func (w *fakeWorld) Mobility(id BodyID) Mobility {
	if b, ok := w.bodies[id]; ok {
		return b.mobility
	}
	return Static
}

func (w *fakeWorld) SetMobility(id BodyID, m Mobility) {
	if b, ok := w.bodies[id]; ok {
		b.mobility = m
	}
}

func (w *fakeWorld) WorldVertices(id BodyID) []rl.Vector3 {
	b, ok := w.bodies[id]
	if !ok || len(b.verts) == 0 {
		return nil
	}
	out := make([]rl.Vector3, len(b.verts))
	for i, v := range b.verts {
		scaled := rl.Vector3Multiply(v, b.scale)
		out[i] = rl.Vector3Add(b.pose.Position, rl.Vector3RotateByQuaternion(scaled, b.pose.Rotation))
	}
	return out
}

// fakeView is a viewpoint the test moves by hand.
type fakeView struct {
	pose Pose
}

func newFakeView() *fakeView {
	return &fakeView{pose: Pose{Rotation: rl.QuaternionIdentity()}}
}

func (v *fakeView) Pose() Pose { return v.pose }

// recordingDiagnostics keeps every event for inspection.
type recordingDiagnostics struct {
	attached     []BodyID
	attachFailed []error
	detached     []BodyID
	forced       []bool
	tickFailed   []error
}

func (d *recordingDiagnostics) Attached(id BodyID, _ int, _ float32) {
	d.attached = append(d.attached, id)
}

func (d *recordingDiagnostics) AttachFailed(_ BodyID, err error) {
	d.attachFailed = append(d.attachFailed, err)
}

func (d *recordingDiagnostics) Detached(id BodyID, forced bool) {
	d.detached = append(d.detached, id)
	d.forced = append(d.forced, forced)
}

func (d *recordingDiagnostics) TickFailed(_ BodyID, err error) {
	d.tickFailed = append(d.tickFailed, err)
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func nearVec(a, b rl.Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

// sameRotation compares quaternions up to sign.
func sameRotation(a, b rl.Quaternion) bool {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	return approx(float32(math.Abs(float64(dot))), 1)
}

func yaw(degrees float32) rl.Quaternion {
	return rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, degrees*rl.Deg2rad)
}
