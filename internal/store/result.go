package store

// UpdateResult is the outcome of an update operation.
//
// An update against a missing identity is an ordinary outcome, not a
// failure: it is reported as a NotFound result with a nil error. Errors are
// reserved for infrastructure and constraint failures.
type UpdateResult[T any] struct {
	value T
	found bool
}

// Updated returns a result carrying the entity as persisted after the update.
func Updated[T any](value T) UpdateResult[T] {
	return UpdateResult[T]{value: value, found: true}
}

// NotFoundForUpdate returns a result signalling that no entity with the
// requested identity existed.
func NotFoundForUpdate[T any]() UpdateResult[T] {
	return UpdateResult[T]{}
}

// Found reports whether the update matched an existing entity.
func (r UpdateResult[T]) Found() bool {
	return r.found
}

// Value returns the updated entity and whether the update matched one.
func (r UpdateResult[T]) Value() (T, bool) {
	return r.value, r.found
}
