// Package impl contains the concrete implementations of the use case layer.
package impl

import "time"

// resolveZones resolves the study and participant timezones for schedule
// evaluation. It never fails: an unloadable zone name falls back to UTC on
// either side. Only a participant flagged as unknown-timezone inherits the
// study zone instead.
func resolveZones(studyTZ, participantTZ string, unknownTZ bool) (studyZone, participantZone *time.Location) {
	studyZone = loadZone(studyTZ, time.UTC)

	if unknownTZ {
		return studyZone, studyZone
	}

	return studyZone, loadZone(participantTZ, time.UTC)
}

func loadZone(name string, fallback *time.Location) *time.Location {
	if name == "" {
		return fallback
	}

	zone, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}

	return zone
}

// relabelTime renders the canonical instant on the study's wall clock and
// re-labels that wall-clock reading with the participant's zone. This is a
// label swap, not an instant conversion: when the zones differ the result is
// a different absolute moment, which shifts delivery to the participant's
// local reading of the authored time.
func relabelTime(canonical time.Time, studyZone, participantZone *time.Location) time.Time {
	wall := canonical.In(studyZone)

	return time.Date(
		wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(),
		participantZone,
	)
}

// localWeekPosition splits a local time into its weekday slot (0 = Sunday)
// and seconds since local midnight.
func localWeekPosition(local time.Time) (weekday, seconds int) {
	return int(local.Weekday()), local.Hour()*3600 + local.Minute()*60 + local.Second()
}
