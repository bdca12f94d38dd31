// Package file implements the repository interfaces on top of per-profile
// JSON files with a versioned envelope and atomic writes.
package file

import (
	"time"

	"paraquip/internal/domain/entity"
	"paraquip/internal/errors"

	"github.com/google/uuid"
)

// Schema versions understood by this build. Version 1 is the legacy format
// with one list per equipment kind; version 2 is the unified list. Anything
// newer fails loudly instead of truncating data.
const (
	schemaVersionLegacy  = 1
	schemaVersionCurrent = 2
)

type persistedProfile struct {
	Version   int                  `json:"version"`
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Equipment []persistedEquipment `json:"equipment"`
}

type persistedEquipment struct {
	ID           uuid.UUID        `json:"id"`
	Kind         string           `json:"kind"`
	Brand        string           `json:"brand"`
	BrandID      string           `json:"brandId,omitempty"`
	Name         string           `json:"name"`
	Size         string           `json:"size,omitempty"`
	CheckCycle   int              `json:"checkCycle"`
	CheckLog     []persistedCheck `json:"checkLog"`
	PurchaseDate *time.Time       `json:"purchaseDate,omitempty"`
}

type persistedCheck struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
}

func toPersistence(profile *entity.Profile) *persistedProfile {
	equipment := make([]persistedEquipment, 0, len(profile.Equipment))
	for _, eq := range profile.Equipment {
		equipment = append(equipment, persistedEquipment{
			ID:           eq.ID,
			Kind:         string(eq.Kind),
			Brand:        eq.Brand,
			BrandID:      eq.BrandID,
			Name:         eq.Name,
			Size:         eq.Size,
			CheckCycle:   eq.CheckCycle,
			CheckLog:     checksToPersistence(eq.CheckLog),
			PurchaseDate: eq.PurchaseDate,
		})
	}

	return &persistedProfile{
		Version:   schemaVersionCurrent,
		ID:        profile.ID,
		Name:      profile.Name,
		Equipment: equipment,
	}
}

func (p *persistedProfile) toModel() (*entity.Profile, error) {
	equipment := make([]entity.Equipment, 0, len(p.Equipment))
	for _, eq := range p.Equipment {
		kind := entity.EquipmentKind(eq.Kind)
		if !kind.Valid() {
			return nil, errors.Errorf("unknown equipment kind %q in profile %s", eq.Kind, p.ID)
		}

		equipment = append(equipment, entity.Equipment{
			ID:           eq.ID,
			Kind:         kind,
			Brand:        eq.Brand,
			BrandID:      eq.BrandID,
			Name:         eq.Name,
			Size:         eq.Size,
			CheckCycle:   eq.CheckCycle,
			CheckLog:     checksToModel(eq.CheckLog),
			PurchaseDate: eq.PurchaseDate,
		})
	}

	return &entity.Profile{
		ID:        p.ID,
		Name:      p.Name,
		Equipment: equipment,
	}, nil
}

func checksToPersistence(checks []entity.Check) []persistedCheck {
	out := make([]persistedCheck, 0, len(checks))
	for _, check := range checks {
		out = append(out, persistedCheck{ID: check.ID, Date: check.Date})
	}

	return out
}

func checksToModel(checks []persistedCheck) []entity.Check {
	out := make([]entity.Check, 0, len(checks))
	for _, check := range checks {
		out = append(out, entity.Check{ID: check.ID, Date: check.Date})
	}

	return out
}
