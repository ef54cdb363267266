package domain

import "errors"

var (
	// ErrNotFound is returned by stores and services when an entity is missing.
	ErrNotFound = errors.New("not found")

	// ErrTaskNotFound indicates a task id that does not belong to the project.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDerivedField is returned when editing budget or deadline of a
	// complex project whose values are computed from its tasks.
	ErrDerivedField = errors.New("field is derived from tasks")

	ErrInvalidStatus = errors.New("invalid value")

	// ErrDuplicate is returned when a uniquely named entity already exists.
	ErrDuplicate = errors.New("already exists")

	// ErrBlankTitle is returned when a quick-add line yields no task title.
	ErrBlankTitle = errors.New("task title is required")
)
