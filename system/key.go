package system

import "slices"

// Key orders a system within its group. Two keys denote the same member
// when their Kind is equal; Precedes and Succeeds only affect ordering.
type Key struct {
	Kind     Kind
	Precedes []Kind
	Succeeds []Kind
}

// mustPrecede reports whether a declared constraint places a before b.
func mustPrecede(a, b Key) bool {
	return slices.Contains(a.Precedes, b.Kind) || slices.Contains(b.Succeeds, a.Kind)
}

// Less reports whether k sorts before other. Declared constraints win in
// either direction, unconstrained pairs fall back to comparing kinds.
//
// Less alone is not transitive: a chain of constraints can disagree with the
// Kind fallback for its ends. Groups therefore sort members topologically over
// the declared constraints and use Less only between members free to run.
// Cyclic declarations cannot be honored; Group.Conflicts reports them.
func (k Key) Less(other Key) bool {
	if mustPrecede(k, other) {
		return true
	}
	if mustPrecede(other, k) {
		return false
	}
	return k.Kind < other.Kind
}
