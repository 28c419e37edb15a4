package grab

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTarget is returned when the forward ray finds nothing to pick up.
	ErrNoTarget = errors.New("grab: no target in reach")

	// ErrTargetImmutable is returned when the target's mobility is Static.
	// It wraps ErrNoTarget, so errors.Is(err, ErrNoTarget) holds for it too.
	ErrTargetImmutable = fmt.Errorf("%w: target is static", ErrNoTarget)

	// ErrNoAttachableGeometry is returned when the target has no sampled surface.
	ErrNoAttachableGeometry = errors.New("grab: target has no attachable geometry")

	// ErrAlreadyAttached is returned by TryAttach while an object is held.
	// The call has no effect.
	ErrAlreadyAttached = errors.New("grab: already holding an object")

	// ErrNoDirections is returned by a ScaleSolver given an empty direction set.
	ErrNoDirections = errors.New("grab: no sample directions")
)
