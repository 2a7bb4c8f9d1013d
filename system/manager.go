package system

import (
	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
	"github.com/rotisserie/eris"
)

// Manager is the root group. Registrations are routed to the group named by
// the system's UpdateIn trait, which must already be registered.
type Manager struct {
	root Group

	// routes maps a registered system to the Kind of its parent group; zero is the root.
	routes map[Kind]Kind
}

func NewManager() *Manager {
	return &Manager{routes: make(map[Kind]Kind)}
}

// Root returns the top level group.
func (m *Manager) Root() *Group {
	return &m.root
}

// Update runs the root group, and through it every nested group.
func (m *Manager) Update(store *ecs.Store) {
	m.root.Update(store)
}

// groupOf resolves the registered group with the given kind. Zero and the
// Manager's own kind name the root.
func (m *Manager) groupOf(kind Kind) (*Group, error) {
	if kind == 0 || kind == KindOf[Manager]() {
		return &m.root, nil
	}
	sys, err := m.Lookup(kind)
	if err != nil {
		return nil, err
	}
	g, ok := AsGroup(sys)
	if !ok {
		return nil, eris.Wrapf(ErrNotGroup, "%s", kind)
	}
	return g, nil
}

// Insert registers sys in the group named by traits.UpdateIn. Registering a
// system that already exists elsewhere moves it.
func (m *Manager) Insert(sys System, traits Traits) error {
	kind := KindOfSystem(sys)
	parent := traits.UpdateIn
	if parent == KindOf[Manager]() {
		parent = 0
		traits.UpdateIn = 0
	}

	for p := parent; p != 0; p = m.routes[p] {
		if p == kind {
			return eris.Wrapf(ErrInvalidRoute, "%s cannot update inside itself", kind)
		}
	}

	target, err := m.groupOf(parent)
	if err != nil {
		log.Default().Debug("system route unresolved",
			log.Stringer("system", kind), log.Stringer("group", parent), log.Error(err))
		return eris.Wrapf(err, "group %s", parent)
	}
	if err := target.Insert(sys, traits); err != nil {
		return err
	}
	if previous, ok := m.routes[kind]; ok && previous != parent {
		if old, err := m.groupOf(previous); err == nil {
			old.Remove(kind)
		}
	}
	m.routes[kind] = parent
	return nil
}

// parentOf returns the group the kind was routed to, or the root for unknown kinds.
func (m *Manager) parentOf(kind Kind) (*Group, error) {
	parent, ok := m.routes[kind]
	if !ok {
		return &m.root, nil
	}
	return m.groupOf(parent)
}

// Remove unregisters the system. Removing a group also forgets the routes of
// everything nested in it.
func (m *Manager) Remove(kind Kind) bool {
	g, err := m.parentOf(kind)
	if err != nil {
		return false
	}
	if !g.Remove(kind) {
		return false
	}
	m.forget(kind)
	return true
}

func (m *Manager) forget(kind Kind) {
	delete(m.routes, kind)
	for child, parent := range m.routes {
		if parent == kind {
			m.forget(child)
		}
	}
}

func (m *Manager) Contains(kind Kind) bool {
	g, err := m.parentOf(kind)
	if err != nil {
		return false
	}
	return g.Contains(kind)
}

func (m *Manager) Lookup(kind Kind) (System, error) {
	g, err := m.parentOf(kind)
	if err != nil {
		return nil, err
	}
	return g.Lookup(kind)
}

// Stats returns the statistics of the root members in execution order.
func (m *Manager) Stats() []SystemStats {
	return m.root.Stats()
}

// Walk visits every registered system depth first in execution order.
// depth is 0 for members of the root.
func (m *Manager) Walk(fn func(sys System, stats SystemStats, depth int)) {
	walkGroup(&m.root, 0, fn)
}

func walkGroup(g *Group, depth int, fn func(System, SystemStats, int)) {
	for _, e := range g.entries {
		fn(e.sys, e.stats.snapshot(e.key.Kind), depth)
		if inner, ok := AsGroup(e.sys); ok {
			walkGroup(inner, depth+1, fn)
		}
	}
}
