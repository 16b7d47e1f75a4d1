package service

import "fmt"

// wrapError adds operation context to err while keeping it matchable with
// errors.Is, so validation and not-found errors keep their classification.
func wrapError(operation string, err error) error {
	return fmt.Errorf("failed to %s: %w", operation, err)
}
