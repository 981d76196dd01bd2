package anchors

// Create returns a value anchor holding the given seed value. Its height is
// zero and its value only moves through Set.
func Create[T any](value T) *Anchor[T] {
	return newAnchor[T](value, nil, nil)
}

// Map returns a derived anchor computed from one input anchor.
func Map[T0, O any](a0 *Anchor[T0], updater func(T0) O) *Anchor[O] {
	var zero O
	return newAnchor(zero, []AnchorBase{a0}, func(args ...any) O {
		return updater(args[0].(T0))
	})
}

// Map2 returns a derived anchor computed from two input anchors.
func Map2[T0, T1, O any](a0 *Anchor[T0], a1 *Anchor[T1], updater func(T0, T1) O) *Anchor[O] {
	var zero O
	return newAnchor(zero, []AnchorBase{a0, a1}, func(args ...any) O {
		return updater(
			args[0].(T0),
			args[1].(T1),
		)
	})
}

// Map3 returns a derived anchor computed from three input anchors.
func Map3[T0, T1, T2, O any](a0 *Anchor[T0], a1 *Anchor[T1], a2 *Anchor[T2], updater func(T0, T1, T2) O) *Anchor[O] {
	var zero O
	return newAnchor(zero, []AnchorBase{a0, a1, a2}, func(args ...any) O {
		return updater(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
		)
	})
}

// Map4 returns a derived anchor computed from four input anchors.
func Map4[T0, T1, T2, T3, O any](a0 *Anchor[T0], a1 *Anchor[T1], a2 *Anchor[T2], a3 *Anchor[T3], updater func(T0, T1, T2, T3) O) *Anchor[O] {
	var zero O
	return newAnchor(zero, []AnchorBase{a0, a1, a2, a3}, func(args ...any) O {
		return updater(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
			args[3].(T3),
		)
	})
}
