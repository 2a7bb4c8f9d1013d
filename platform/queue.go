package platform

import (
	"fmt"

	"github.com/plus3/starlight/ecs"
	"github.com/plus3/starlight/log"
)

// Queue is an in-memory event source for headless runs and tests.
type Queue struct {
	events []Event
}

// Push appends events to be delivered on the next ProcessEvents call.
func (q *Queue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// ProcessEvents drains the queue into the store's Window singleton.
// It returns false if a QuitEvent was among the events.
func (q *Queue) ProcessEvents(store *ecs.Store) bool {
	pending := q.events
	q.events = nil
	return Dispatch(store, pending...)
}

// Dispatch delivers events to the store's Window singleton and reports
// whether the application should keep running. Without a window only
// QuitEvent has an effect.
func Dispatch(store *ecs.Store, events ...Event) bool {
	window, hasWindow := ecs.LookupSingleton[Window](store)
	logger := log.Default()
	running := true

	for _, event := range events {
		if _, quit := event.(QuitEvent); quit {
			running = false
			continue
		}
		if !hasWindow {
			logger.Trace("event dropped without window")
			continue
		}
		if logger.Enabled(log.LevelTrace) {
			logger.Trace("event dispatched",
				log.Stringer("window", window.ID), log.String("event", fmt.Sprintf("%T", event)))
		}
		window.Handle(event)
	}
	return running
}
