package components

import (
	"scalegrab/internal/engine"
	"scalegrab/internal/grab"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity   rl.Vector3
	Mass       float32
	Bounciness float32 // 0 = no bounce, 1 = perfect bounce
	Friction   float32 // 0 = ice, 1 = stops immediately
	UseGravity bool

	// Mobility decides whether anything but the physics step may move the body.
	// Only Movable bodies with SimulatePhysics set are integrated.
	Mobility        grab.Mobility
	SimulatePhysics bool

	// CollisionEnabled=false removes the body from contact resolution
	// (it is still visible to ray casts).
	CollisionEnabled bool

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:             1.0,
		Bounciness:       0.3,
		Friction:         0.1,
		UseGravity:       true,
		Mobility:         grab.Movable,
		SimulatePhysics:  true,
		CollisionEnabled: true,
		CanSleep:         true,
	}
}

// Simulated reports whether the physics step owns this body's motion.
func (r *Rigidbody) Simulated() bool {
	return r.SimulatePhysics && r.Mobility == grab.Movable && !r.IsSleeping
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep puts the body to sleep after it has been slow for long enough
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		r.Velocity = rl.Vector3Scale(r.Velocity, 0.9)

		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
