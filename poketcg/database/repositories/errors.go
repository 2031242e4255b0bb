package repositories

import "errors"

var (
	// ErrStoreUnavailable wraps connectivity or timeout failures talking to
	// the document store. Not retried here; retry policy belongs to callers.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrDecode means a stored document does not match the entity shape.
	ErrDecode = errors.New("stored document cannot be decoded")

	// ErrPlayerNotFound is the explicit miss result of Find.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDataCorruption means more than one record exists for a discord_id.
	// Never auto-resolved.
	ErrDataCorruption = errors.New("duplicate records for discord_id")

	// ErrNotPersisted means Update was called with a record that was never
	// stored. Caller bug.
	ErrNotPersisted = errors.New("player has no store identity")
)
