package linked

import "errors"

// ErrEmptyContainer is matched by every EmptyContainerError through errors.Is.
var ErrEmptyContainer = errors.New("container is empty")

// EmptyContainerError is returned when removing from a container that holds no elements.
// Op is the removing operation, Container the kind of container, e.g. "dequeue" and "queue".
type EmptyContainerError struct {
	Op, Container string
}

func (e *EmptyContainerError) Error() string {
	return "cannot " + e.Op + " from an empty " + e.Container
}

func (e *EmptyContainerError) Is(target error) bool {
	return target == ErrEmptyContainer
}
