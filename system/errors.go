package system

import "github.com/rotisserie/eris"

var (
	ErrNotFound     = eris.New("system not found")
	ErrNotGroup     = eris.New("system is not a group")
	ErrInvalidRoute = eris.New("invalid group route")
)
