package entity

import (
	"time"

	"github.com/google/uuid"
)

// SecondsPerDay bounds a seconds-since-midnight value; valid timings are in [0, SecondsPerDay).
const SecondsPerDay = 24 * 60 * 60

// Survey represents one questionnaire belonging to a study.
type Survey struct {
	ID            uuid.UUID     `json:"id"`             // The Global Unique Identifier (GUID) for the survey.
	ObjectID      string        `json:"object_id"`      // Opaque identifier the mobile app uses to reference the survey.
	StudyID       uuid.UUID     `json:"study_id"`       // The ID of the study this survey belongs to.
	WeeklyTimings WeeklyTimings `json:"weekly_timings"` // Authored recurring delivery times, bucketed by weekday.
	Deleted       bool          `json:"deleted"`        // Soft-delete flag; deleted surveys are never dispatched.
	CreatedAt     time.Time     `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time     `json:"updated_at"`     // Timestamp of the last modification.
}

// WeeklyTimings is the per-weekday delivery schedule of a survey: seven slots
// (index 0 = Sunday .. 6 = Saturday), each a sorted, duplicate-free list of
// seconds since local midnight.
type WeeklyTimings [7][]int

// Clone returns a deep copy so callers can mutate slots without aliasing.
func (w WeeklyTimings) Clone() WeeklyTimings {
	var out WeeklyTimings
	for day, secs := range w {
		if secs == nil {
			continue
		}
		out[day] = make([]int, len(secs))
		copy(out[day], secs)
	}

	return out
}

// Insert adds a timing into the given weekday slot, keeping the slot sorted
// and duplicate-free. Out-of-range inputs are ignored.
func (w *WeeklyTimings) Insert(weekday, seconds int) {
	if weekday < 0 || weekday > 6 || seconds < 0 || seconds >= SecondsPerDay {
		return
	}

	slot := w[weekday]
	idx := 0
	for idx < len(slot) && slot[idx] < seconds {
		idx++
	}
	if idx < len(slot) && slot[idx] == seconds {
		return
	}

	slot = append(slot, 0)
	copy(slot[idx+1:], slot[idx:])
	slot[idx] = seconds
	w[weekday] = slot
}

// NextAfter returns the first authored (weekday, seconds) pair strictly after
// the given position in week order, wrapping to the following week when the
// position is at or past the last timing. ok is false when no timings exist.
func (w WeeklyTimings) NextAfter(weekday, seconds int) (nextWeekday, nextSeconds int, ok bool) {
	for offset := 0; offset <= 7; offset++ {
		day := (weekday + offset) % 7
		for _, secs := range w[day] {
			if offset == 0 && secs <= seconds {
				continue
			}
			// On the wrapped revisit of the starting weekday any timing counts.
			return day, secs, true
		}
	}

	return 0, 0, false
}

// IsEmpty reports whether no weekday has any authored timing.
func (w WeeklyTimings) IsEmpty() bool {
	for _, slot := range w {
		if len(slot) > 0 {
			return false
		}
	}

	return true
}
