package ecs

// Commands buffers structural changes so systems can request them while
// iterating. The application flushes the buffer after each frame.
type Commands struct {
	creates []func(*Store, Entity)
	deletes []Entity
	adds    []entityCommand
	removes []entityCommand
	defers  []func()
}

type entityCommand struct {
	entity Entity
	apply  func(*Store, Entity)
}

func newCommands() *Commands {
	return &Commands{}
}

// Create queues the creation of an entity. init, if not nil, runs with the
// new handle during the flush.
func (c *Commands) Create(init func(store *Store, e Entity)) {
	c.creates = append(c.creates, init)
}

// Destroy queues the destruction of an entity.
func (c *Commands) Destroy(e Entity) {
	c.deletes = append(c.deletes, e)
}

// Defer queues fn to run after every other command of the flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// AddComponent queues an upsert of value onto e.
func AddComponent[T any](c *Commands, e Entity, value T) {
	c.adds = append(c.adds, entityCommand{
		entity: e,
		apply: func(s *Store, e Entity) {
			CreateComponent(s, e, value)
		},
	})
}

// RemoveComponent queues the removal of the T component from e.
func RemoveComponent[T any](c *Commands, e Entity) {
	c.removes = append(c.removes, entityCommand{
		entity: e,
		apply: func(s *Store, e Entity) {
			DestroyComponent[T](s, e)
		},
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the queued commands to store in the order destroys, removes,
// adds, creates, defers. Commands targeting entities that are no longer valid
// are skipped. Commands queued while flushing wait for the next flush.
func (c *Commands) Flush(store *Store) {
	pending := *c
	*c = Commands{}

	for _, e := range pending.deletes {
		store.Destroy(e)
	}

	for _, cmd := range pending.removes {
		if store.Valid(cmd.entity) {
			cmd.apply(store, cmd.entity)
		}
	}

	for _, cmd := range pending.adds {
		if store.Valid(cmd.entity) {
			cmd.apply(store, cmd.entity)
		}
	}

	for _, init := range pending.creates {
		e := store.Create()
		if init != nil {
			init(store, e)
		}
	}

	for _, fn := range pending.defers {
		fn()
	}
}
