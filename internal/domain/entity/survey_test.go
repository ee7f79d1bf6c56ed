package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyTimings_InsertKeepsSlotSortedAndUnique(t *testing.T) {
	var timings WeeklyTimings

	timings.Insert(2, 3600)
	timings.Insert(2, 600)
	timings.Insert(2, 7200)
	timings.Insert(2, 3600)

	assert.Equal(t, []int{600, 3600, 7200}, timings[2])
}

func TestWeeklyTimings_InsertIgnoresOutOfRange(t *testing.T) {
	var timings WeeklyTimings

	timings.Insert(-1, 0)
	timings.Insert(7, 0)
	timings.Insert(0, -1)
	timings.Insert(0, SecondsPerDay)

	assert.True(t, timings.IsEmpty())
}

func TestWeeklyTimings_NextAfterSameDay(t *testing.T) {
	var timings WeeklyTimings
	timings.Insert(1, 32400)
	timings.Insert(1, 61200)

	day, secs, ok := timings.NextAfter(1, 32400)

	assert.True(t, ok)
	assert.Equal(t, 1, day)
	assert.Equal(t, 61200, secs)
}

func TestWeeklyTimings_NextAfterWrapsToFollowingWeek(t *testing.T) {
	var timings WeeklyTimings
	timings.Insert(1, 32400)

	// Past the only timing of the week: it fires again next Monday.
	day, secs, ok := timings.NextAfter(1, 32400)

	assert.True(t, ok)
	assert.Equal(t, 1, day)
	assert.Equal(t, 32400, secs)
}

func TestWeeklyTimings_NextAfterCrossesWeekdays(t *testing.T) {
	var timings WeeklyTimings
	timings.Insert(5, 3600)

	day, secs, ok := timings.NextAfter(2, 50000)

	assert.True(t, ok)
	assert.Equal(t, 5, day)
	assert.Equal(t, 3600, secs)
}

func TestWeeklyTimings_NextAfterEmpty(t *testing.T) {
	var timings WeeklyTimings

	_, _, ok := timings.NextAfter(0, 0)

	assert.False(t, ok)
}

func TestWeeklyTimings_CloneIsDeep(t *testing.T) {
	var timings WeeklyTimings
	timings.Insert(3, 100)

	clone := timings.Clone()
	clone.Insert(3, 200)

	assert.Equal(t, []int{100}, timings[3])
	assert.Equal(t, []int{100, 200}, clone[3])
}

func TestWeeklyTimings_IsEmpty(t *testing.T) {
	var timings WeeklyTimings
	assert.True(t, timings.IsEmpty())

	timings.Insert(6, 0)
	assert.False(t, timings.IsEmpty())
}
