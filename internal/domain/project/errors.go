package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNameRequired indicates a missing or blank project name.
	ErrNameRequired = errors.New("project name required")
	// ErrNotOwner indicates the current identity doesn't own the project.
	ErrNotOwner = errors.New("not the project owner")
)
