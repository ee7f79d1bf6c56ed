package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DueBatch is the result of one due-event collection pass, grouped by device
// token. One push is sent per token carrying all of its due surveys.
type DueBatch struct {
	// SurveysByToken maps each token to the distinct survey object IDs due for it.
	SurveysByToken map[string][]string
	// SchedulesByToken maps each token to the scheduled event IDs behind those surveys.
	SchedulesByToken map[string][]uuid.UUID
	// PatientIDsByToken maps each token to its participant's external identifier.
	PatientIDsByToken map[string]string
}

// Tokens returns the tokens with at least one due survey.
func (b *DueBatch) Tokens() []string {
	tokens := make([]string, 0, len(b.SurveysByToken))
	for token := range b.SurveysByToken {
		tokens = append(tokens, token)
	}

	return tokens
}

// DispatchUsecase drives one notification cycle: collecting due events and
// sending one push per device token with full failure bookkeeping.
type DispatchUsecase interface {
	// GatewayReady reports whether the push backend is configured. When it
	// is not, the whole cycle is skipped without touching any state.
	GatewayReady() bool

	// CollectDue selects every scheduled event due at now and groups the
	// results by active device token.
	CollectDue(ctx context.Context, now time.Time) (*DueBatch, error)

	// Dispatch sends one survey notification to one token and applies the
	// terminal bookkeeping: archive rows, credential state transitions,
	// and the next weekly occurrence.
	Dispatch(ctx context.Context, token string, surveyObjectIDs []string, scheduleIDs []uuid.UUID, now time.Time) error
}
