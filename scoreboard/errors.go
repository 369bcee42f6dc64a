/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package scoreboard

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("player not found")
	ErrDuplicate    = errors.New("player already exists")
	ErrInvalidInput = errors.New("invalid score")
)

// NotFoundError is returned when no player has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find player with name %q", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError is returned by AddPlayer when the name is taken.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("player with name %q already exists", e.Name)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// InvalidInputError is returned by CommitRound when a pending value is
// not a number. No scores are changed when it is returned.
type InvalidInputError struct {
	Name  string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("score %q for player %q is not a number", e.Value, e.Name)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
