package store

import "errors"

// Every gateway operation reports its outcome through one of these
// sentinels; raw sql errors never leave this package.
var (
	// ErrUnavailable indicates the store is unreachable. It is not retried
	// here; callers surface it and the client retries.
	ErrUnavailable = errors.New("store unavailable")

	// ErrNotFound indicates no document exists for the requested day or key.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a create hit an already existing day.
	ErrConflict = errors.New("record already exists")

	// ErrNotChanged indicates a task delete matched nothing, so no write
	// was performed.
	ErrNotChanged = errors.New("record not changed")
)
