package entity

import "time"

// CheckUrgency classifies how soon a check is due.
type CheckUrgency string

const (
	// UrgencyNow means the due date has been reached or passed.
	UrgencyNow CheckUrgency = "now"
	// UrgencySoon means the due date falls within the soon window.
	UrgencySoon CheckUrgency = "soon"
	// UrgencyLater means the due date lies beyond the soon window.
	UrgencyLater CheckUrgency = "later"
	// UrgencyNever means checking is turned off for the equipment.
	UrgencyNever CheckUrgency = "never"
)

// DefaultSoonWindow is the lookahead within which a due check counts as
// "soon". It is the single tunable for the soon/later boundary.
const DefaultSoonWindow = 30 * 24 * time.Hour

// Urgency classifies the equipment's check state at the given instant.
// A due date exactly at the soon-window boundary still counts as soon.
func (e *Equipment) Urgency(now time.Time, soonWindow time.Duration) CheckUrgency {
	next, ok := e.NextCheckDate(now)
	if !ok {
		return UrgencyNever
	}

	switch {
	case !next.After(now):
		return UrgencyNow
	case !next.After(now.Add(soonWindow)):
		return UrgencySoon
	default:
		return UrgencyLater
	}
}
