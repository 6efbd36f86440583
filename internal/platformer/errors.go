package platformer

import "errors"

// Setup errors. A world is never built from data that fails these checks.
var (
	ErrNoPlayer          = errors.New("level has no player spawn")
	ErrMultiplePlayers   = errors.New("level has more than one player spawn")
	ErrDimensionMismatch = errors.New("tile count does not match level dimensions")
	ErrInvalidSize       = errors.New("level dimensions must be positive")
	ErrUnknownKind       = errors.New("unknown entity kind")
	ErrTunneling         = errors.New("speed limit allows moving a full tile per tick")
	ErrPlayerOutOfBounds = errors.New("player spawn is outside the grid")
)
