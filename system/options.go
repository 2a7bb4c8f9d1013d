package system

// Traits are the scheduling declarations of a system.
type Traits struct {
	Precedes []Kind
	Succeeds []Kind

	// UpdateIn is the Kind of the group the system runs in. Zero or the
	// Manager's own Kind is the root.
	UpdateIn Kind
}

func (t Traits) key(kind Kind) Key {
	return Key{Kind: kind, Precedes: t.Precedes, Succeeds: t.Succeeds}
}

type Option func(*Traits)

func NewTraits(opts ...Option) Traits {
	var t Traits
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Precedes declares that the system runs before each of kinds.
func Precedes(kinds ...Kind) Option {
	return func(t *Traits) {
		t.Precedes = append(t.Precedes, kinds...)
	}
}

// Succeeds declares that the system runs after each of kinds.
func Succeeds(kinds ...Kind) Option {
	return func(t *Traits) {
		t.Succeeds = append(t.Succeeds, kinds...)
	}
}

// UpdateIn places the system in the group identified by kind.
func UpdateIn(kind Kind) Option {
	return func(t *Traits) {
		t.UpdateIn = kind
	}
}

// Before is Precedes(KindOf[T]()).
func Before[T any]() Option {
	return Precedes(KindOf[T]())
}

// After is Succeeds(KindOf[T]()).
func After[T any]() Option {
	return Succeeds(KindOf[T]())
}

// In is UpdateIn(KindOf[G]()).
func In[G any]() Option {
	return UpdateIn(KindOf[G]())
}
