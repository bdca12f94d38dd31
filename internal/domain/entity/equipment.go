// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentKind discriminates the supported gear categories.
type EquipmentKind string

const (
	// KindParaglider is a paraglider wing.
	KindParaglider EquipmentKind = "paraglider"
	// KindReserve is a reserve parachute.
	KindReserve EquipmentKind = "reserve"
	// KindHarness is a harness.
	KindHarness EquipmentKind = "harness"
)

// Valid reports whether the kind is one of the known gear categories.
func (k EquipmentKind) Valid() bool {
	switch k {
	case KindParaglider, KindReserve, KindHarness:
		return true
	default:
		return false
	}
}

// Check represents a single recorded safety inspection.
type Check struct {
	ID   uuid.UUID // Unique within the owning equipment record.
	Date time.Time // Date the inspection was performed.
}

// NewCheck creates a check entry for the given date.
func NewCheck(date time.Time) Check {
	return Check{ID: uuid.New(), Date: date}
}

// Equipment represents one piece of gear. All kinds share the same shape;
// Size is only meaningful for paragliders.
type Equipment struct {
	ID           uuid.UUID     // Stable identity, assigned at creation.
	Kind         EquipmentKind // Gear category.
	Brand        string        // Manufacturer display name.
	BrandID      string        // Optional manufacturer lookup key carried over from older files.
	Name         string        // Model display name.
	Size         string        // Wing size, paraglider only.
	CheckCycle   int           // Months between mandatory checks; 0 turns checking off.
	CheckLog     []Check       // Insertion-ordered inspection history.
	PurchaseDate *time.Time    // Optional purchase date.
}

// NextCheckDate returns the date the next check is due. The second return
// value is false when CheckCycle is 0, meaning checks are turned off for
// this equipment.
//
// With an empty log the equipment is due immediately, so now is returned.
// Otherwise the due date derives from the last entry of the log in insertion
// order, not from the chronologically latest check. That matches the shipped
// behavior exactly; see the package tests before changing it.
func (e *Equipment) NextCheckDate(now time.Time) (time.Time, bool) {
	if e.CheckCycle == 0 {
		return time.Time{}, false
	}

	if len(e.CheckLog) == 0 {
		return now, true
	}

	last := e.CheckLog[len(e.CheckLog)-1]

	return last.Date.AddDate(0, e.CheckCycle, 0), true
}

// LastCheck returns the most recent check by insertion order, or nil when
// the log is empty.
func (e *Equipment) LastCheck() *Check {
	if len(e.CheckLog) == 0 {
		return nil
	}

	return &e.CheckLog[len(e.CheckLog)-1]
}
