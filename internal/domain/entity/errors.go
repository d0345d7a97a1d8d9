package entity

import "venture/internal/errors"

var (
	// ErrTransitionNotAllowed is returned when a terminal request is acted upon.
	ErrTransitionNotAllowed = errors.New("connection request is not pending")
	// ErrUnknownConnectionAction is returned for actions other than ACCEPT and REJECT.
	ErrUnknownConnectionAction = errors.New("unknown connection action")
)
