// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus is the state of a directed connection request.
type ConnectionStatus string

const (
	// ConnectionStatusNone means no request exists between the pair.
	ConnectionStatusNone ConnectionStatus = "NONE"
	// ConnectionStatusPending is the state right after a request is sent.
	ConnectionStatusPending ConnectionStatus = "PENDING"
	// ConnectionStatusAccepted is terminal; the pair is connected.
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	// ConnectionStatusRejected is terminal; no resend is possible.
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

// String returns the string representation of the ConnectionStatus.
func (s ConnectionStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed from s.
func (s ConnectionStatus) IsTerminal() bool {
	return s == ConnectionStatusAccepted || s == ConnectionStatusRejected
}

// ConnectionAction is what the recipient does with a pending request.
type ConnectionAction string

const (
	// ConnectionActionAccept moves PENDING to ACCEPTED.
	ConnectionActionAccept ConnectionAction = "ACCEPT"
	// ConnectionActionReject moves PENDING to REJECTED.
	ConnectionActionReject ConnectionAction = "REJECT"
)

// IsValid checks if the ConnectionAction is a valid value.
func (a ConnectionAction) IsValid() bool {
	return a == ConnectionActionAccept || a == ConnectionActionReject
}

// ConnectionRequest is a directed invitation from one user to another.
type ConnectionRequest struct {
	ID           uuid.UUID        `json:"id"`
	FromUserID   uuid.UUID        `json:"from_user_id"`
	ToUserID     uuid.UUID        `json:"to_user_id"`
	Status       ConnectionStatus `json:"status"`
	Message      string           `json:"message,omitempty"`
	ConnectionID *uuid.UUID       `json:"connection_id,omitempty"` // Set exactly once, on accept.
	RespondedAt  *time.Time       `json:"responded_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewConnectionRequest builds a PENDING request.
func NewConnectionRequest(from, to uuid.UUID, message string, now time.Time) *ConnectionRequest {
	return &ConnectionRequest{
		ID:         uuid.New(),
		FromUserID: from,
		ToUserID:   to,
		Status:     ConnectionStatusPending,
		Message:    message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// PairKey identifies the unordered pair of users. At most one request exists per key.
func PairKey(a, b uuid.UUID) string {
	as, bs := a.String(), b.String()
	if as > bs {
		as, bs = bs, as
	}

	return as + ":" + bs
}

// IsParticipant reports whether userID is the sender or the recipient.
func (r *ConnectionRequest) IsParticipant(userID uuid.UUID) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Apply performs the recipient's action. It returns ErrTransitionNotAllowed when the request
// is not pending; the receiver is left unchanged in that case.
func (r *ConnectionRequest) Apply(action ConnectionAction, now time.Time) error {
	if r.Status != ConnectionStatusPending {
		return ErrTransitionNotAllowed
	}

	switch action {
	case ConnectionActionAccept:
		connectionID := uuid.New()
		r.Status = ConnectionStatusAccepted
		r.ConnectionID = &connectionID
	case ConnectionActionReject:
		r.Status = ConnectionStatusRejected
	default:
		return ErrUnknownConnectionAction
	}

	r.RespondedAt = &now
	r.UpdatedAt = now

	return nil
}
