package file

import (
	"time"

	"paraquip/internal/domain/entity"

	"github.com/google/uuid"
)

// legacyProfile is the version 1 on-disk schema: one list per equipment
// kind instead of a unified list. It is read-only; saving always writes the
// current schema.
type legacyProfile struct {
	Version    int               `json:"version"`
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Paraglider []legacyEquipment `json:"paraglider"`
	Reserves   []legacyEquipment `json:"reserves"`
	Harnesses  []legacyEquipment `json:"harnesses"`
}

type legacyEquipment struct {
	ID           uuid.UUID        `json:"id"`
	Brand        string           `json:"brand"`
	BrandID      *string          `json:"brandId"`
	Name         string           `json:"name"`
	Size         string           `json:"size"`
	CheckCycle   int              `json:"checkCycle"`
	CheckLog     []persistedCheck `json:"checkLog"`
	PurchaseDate *time.Time       `json:"purchaseDate"`
}

// toModel migrates the legacy schema into the unified equipment list.
// Ids, check logs, cycles and purchase dates carry over unchanged; the
// optional brandId is kept as auxiliary lookup data.
func (p *legacyProfile) toModel() *entity.Profile {
	equipment := make([]entity.Equipment, 0, len(p.Paraglider)+len(p.Reserves)+len(p.Harnesses))
	for _, eq := range p.Paraglider {
		equipment = append(equipment, eq.toModel(entity.KindParaglider))
	}
	for _, eq := range p.Reserves {
		equipment = append(equipment, eq.toModel(entity.KindReserve))
	}
	for _, eq := range p.Harnesses {
		equipment = append(equipment, eq.toModel(entity.KindHarness))
	}

	return &entity.Profile{
		ID:        p.ID,
		Name:      p.Name,
		Equipment: equipment,
	}
}

func (e legacyEquipment) toModel(kind entity.EquipmentKind) entity.Equipment {
	var brandID string
	if e.BrandID != nil {
		brandID = *e.BrandID
	}

	return entity.Equipment{
		ID:           e.ID,
		Kind:         kind,
		Brand:        e.Brand,
		BrandID:      brandID,
		Name:         e.Name,
		Size:         e.Size,
		CheckCycle:   e.CheckCycle,
		CheckLog:     checksToModel(e.CheckLog),
		PurchaseDate: e.PurchaseDate,
	}
}
