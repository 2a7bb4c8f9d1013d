package ecs

import "github.com/rotisserie/eris"

var (
	// ErrNotFound is raised when a required component or singleton is absent.
	ErrNotFound = eris.New("not found")

	// ErrInvalidEntity is raised when a handle does not denote a live entity.
	ErrInvalidEntity = eris.New("invalid entity")
)
