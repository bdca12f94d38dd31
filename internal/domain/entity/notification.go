package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationUnit is the unit of a reminder offset.
type NotificationUnit string

const (
	// UnitDays offsets the reminder by days.
	UnitDays NotificationUnit = "days"
	// UnitMonths offsets the reminder by months.
	UnitMonths NotificationUnit = "months"
)

// NotificationConfig is one user-defined reminder rule: fire the reminder
// Multiplier Units before the due date. Rules are independent of each other;
// their list order is display order only.
type NotificationConfig struct {
	ID         uuid.UUID
	Unit       NotificationUnit
	Multiplier int // Non-negative; 0 means remind on the due date itself.
}

// NewNotificationConfig returns the default rule: one month before the due date.
func NewNotificationConfig() NotificationConfig {
	return NotificationConfig{
		ID:         uuid.New(),
		Unit:       UnitMonths,
		Multiplier: 1,
	}
}

// Offset subtracts the rule's offset from the given date.
func (c NotificationConfig) Offset(date time.Time) time.Time {
	switch c.Unit {
	case UnitDays:
		return date.AddDate(0, 0, -c.Multiplier)
	case UnitMonths:
		return date.AddDate(0, -c.Multiplier, 0)
	default:
		return date
	}
}

// BodyLocalizationKey selects the plural form of the reminder body for the
// rule's unit and multiplier.
func (c NotificationConfig) BodyLocalizationKey() string {
	var form string
	switch c.Multiplier {
	case 0:
		form = "zero"
	case 1:
		form = "one"
	case 2:
		form = "two"
	default:
		form = "other"
	}

	return fmt.Sprintf("notification_check_due_%s_body_%s", c.Unit, form)
}

func (c NotificationConfig) String() string {
	return fmt.Sprintf("NotificationConfig(%d %s)", c.Multiplier, c.Unit)
}

// NotificationState is the persistent state of the reminder engine.
type NotificationState struct {
	IsEnabled          bool                 // Master switch.
	WasRequestRejected bool                 // OS-level permission was denied; avoid re-prompting.
	Configuration      []NotificationConfig // The user's reminder rules.
}

// DefaultNotificationState is the first-run state: disabled, with a single
// one-month rule.
func DefaultNotificationState() NotificationState {
	return NotificationState{
		IsEnabled:          false,
		WasRequestRejected: false,
		Configuration:      []NotificationConfig{NewNotificationConfig()},
	}
}

// Clone returns a copy with its own configuration slice.
func (s NotificationState) Clone() NotificationState {
	cfgs := make([]NotificationConfig, len(s.Configuration))
	copy(cfgs, s.Configuration)
	s.Configuration = cfgs

	return s
}

// Notification is one scheduled reminder, identified by the pair of
// equipment id and rule id. It is derived state: the engine recomputes the
// full set on every reconciliation instead of storing it.
type Notification struct {
	EquipmentID uuid.UUID
	ConfigID    uuid.UUID
	Title       string
	Body        string
	Date        time.Time // Trigger timestamp.
}

// Key is the composite identity used to de-duplicate scheduled reminders.
func (n Notification) Key() string {
	return n.EquipmentID.String() + "." + n.ConfigID.String()
}

func (n Notification) String() string {
	return fmt.Sprintf("Notification(%s, %s)", n.Key(), n.Date.Format(time.RFC3339))
}
