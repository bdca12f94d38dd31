package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Profile is a named collection of equipment owned by one user context.
// It is a plain aggregate; all mutation goes through the single owning
// profile service, never through concurrent writers.
type Profile struct {
	ID        uuid.UUID
	Name      string
	Equipment []Equipment
}

// NewProfile creates an empty profile with a fresh identity.
func NewProfile(name string) *Profile {
	return &Profile{
		ID:        uuid.New(),
		Name:      name,
		Equipment: []Equipment{},
	}
}

// EquipmentByID returns a pointer into the profile's equipment slice, or nil
// when the id is unknown.
func (p *Profile) EquipmentByID(id uuid.UUID) *Equipment {
	for i := range p.Equipment {
		if p.Equipment[i].ID == id {
			return &p.Equipment[i]
		}
	}

	return nil
}

// StoreEquipment inserts the equipment, or replaces the existing record when
// the id is already present.
func (p *Profile) StoreEquipment(eq Equipment) {
	for i := range p.Equipment {
		if p.Equipment[i].ID == eq.ID {
			p.Equipment[i] = eq

			return
		}
	}

	p.Equipment = append(p.Equipment, eq)
}

// RemoveEquipment deletes the records at the given positions. Out-of-range
// positions are ignored. It returns the ids of the removed records so the
// caller can cancel anything scheduled against them.
func (p *Profile) RemoveEquipment(positions ...int) []uuid.UUID {
	removed := make([]uuid.UUID, 0, len(positions))
	for _, i := range sortedDescending(positions) {
		if i < 0 || i >= len(p.Equipment) {
			continue
		}
		removed = append(removed, p.Equipment[i].ID)
		p.Equipment = append(p.Equipment[:i], p.Equipment[i+1:]...)
	}

	return removed
}

// LogCheck appends a check dated date to the equipment's log. It reports
// whether the equipment was found.
func (p *Profile) LogCheck(equipmentID uuid.UUID, date time.Time) bool {
	eq := p.EquipmentByID(equipmentID)
	if eq == nil {
		return false
	}

	eq.CheckLog = append(eq.CheckLog, NewCheck(date))

	return true
}

// RemoveChecks deletes the log entries at the given positions. It reports
// whether the equipment was found.
func (p *Profile) RemoveChecks(equipmentID uuid.UUID, positions ...int) bool {
	eq := p.EquipmentByID(equipmentID)
	if eq == nil {
		return false
	}

	for _, i := range sortedDescending(positions) {
		if i < 0 || i >= len(eq.CheckLog) {
			continue
		}
		eq.CheckLog = append(eq.CheckLog[:i], eq.CheckLog[i+1:]...)
	}

	return true
}

// Clone returns a deep copy of the profile, safe to hand out to readers
// while the original keeps being mutated.
func (p *Profile) Clone() *Profile {
	clone := &Profile{
		ID:        p.ID,
		Name:      p.Name,
		Equipment: make([]Equipment, len(p.Equipment)),
	}
	copy(clone.Equipment, p.Equipment)
	for i := range clone.Equipment {
		log := make([]Check, len(p.Equipment[i].CheckLog))
		copy(log, p.Equipment[i].CheckLog)
		clone.Equipment[i].CheckLog = log
		if p.Equipment[i].PurchaseDate != nil {
			d := *p.Equipment[i].PurchaseDate
			clone.Equipment[i].PurchaseDate = &d
		}
	}

	return clone
}

// sortedDescending copies and sorts positions high to low so earlier removals
// do not shift the later ones.
func sortedDescending(positions []int) []int {
	out := make([]int, len(positions))
	copy(out, positions)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}
