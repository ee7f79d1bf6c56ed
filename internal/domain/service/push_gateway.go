// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Classified delivery failures. The dispatcher maps these onto credential
// state transitions; anything unclassified is treated as transient.
var (
	// ErrGatewayNotConfigured is returned when no push backend is wired in.
	ErrGatewayNotConfigured = errors.New("push gateway not configured")
	// ErrTokenUnregistered is returned when the push backend permanently rejects the token.
	ErrTokenUnregistered = errors.New("device token is no longer registered")
	// ErrQuotaExceeded is returned when the push backend throttles the sender.
	ErrQuotaExceeded = errors.New("push quota exceeded")
	// ErrSenderMismatch is returned when the token belongs to a different sender ID.
	ErrSenderMismatch = errors.New("token sender mismatch")
	// ErrAuthMismatch is returned when third-party (APNs) auth fails for the token.
	ErrAuthMismatch = errors.New("third party auth error")
)

// SurveyMessage is one survey notification addressed to one device token.
type SurveyMessage struct {
	Token      string    // FCM device token.
	OSType     string    // entity.OSAndroid selects the data-only high-priority shape.
	Nonce      string    // Random per-send identifier so the device can dedupe.
	SentTime   time.Time // Dispatch wall time, serialized into the payload.
	SurveyIDs  []string  // Device-facing survey object IDs, at least one.
	ScheduleID uuid.UUID // Checkin reference the device echoes back.
}

// PushGateway defines the interface for the push notification backend.
type PushGateway interface {
	// Configured reports whether a backend is wired in. When false every
	// send returns ErrGatewayNotConfigured and dispatch cycles are skipped.
	Configured() bool

	// SendSurvey delivers one survey notification. Failures are returned
	// as one of the classified sentinels above (wrapped with the backend's
	// reason text) or as an unclassified error.
	SendSurvey(ctx context.Context, msg *SurveyMessage) error
}
