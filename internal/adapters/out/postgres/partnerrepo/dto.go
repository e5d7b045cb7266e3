// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence. Served areas are stored as a Postgres
// text[] column; the shift is embedded as two nullable "HH:MM" columns.
package partnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates.
type PartnerDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"type:varchar(255);not null"`
	Email           string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone           string         `gorm:"type:varchar(32);not null"`
	Status          string         `gorm:"type:varchar(16);not null;index"`
	CurrentLoad     int            `gorm:"type:int;not null"`
	AreaIDs         pq.StringArray `gorm:"type:text[];not null"`
	ShiftStart      *string        `gorm:"type:varchar(5)"`
	ShiftEnd        *string        `gorm:"type:varchar(5)"`
	Rating          float64        `gorm:"type:numeric(3,2);not null"`
	CompletedOrders int            `gorm:"type:int;not null"`
	CancelledOrders int            `gorm:"type:int;not null"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	areaIDs := make(pq.StringArray, 0, len(aggregate.AreaIDs()))
	for _, areaID := range aggregate.AreaIDs() {
		areaIDs = append(areaIDs, areaID.String())
	}

	var shiftStart, shiftEnd *string
	if aggregate.Shift() != nil {
		start := aggregate.Shift().Start().String()
		end := aggregate.Shift().End().String()
		shiftStart = &start
		shiftEnd = &end
	}

	return PartnerDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Status:          aggregate.Status().String(),
		CurrentLoad:     aggregate.CurrentLoad(),
		AreaIDs:         areaIDs,
		ShiftStart:      shiftStart,
		ShiftEnd:        shiftEnd,
		Rating:          aggregate.Metrics().Rating(),
		CompletedOrders: aggregate.Metrics().CompletedOrders(),
		CancelledOrders: aggregate.Metrics().CancelledOrders(),
	}
}

// toDomain converts a database DTO back to a partner aggregate using
// RestorePartner, which re-validates the persisted state.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := partner.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	areaIDs := make([]kernel.UUID, 0, len(dto.AreaIDs))
	for _, raw := range dto.AreaIDs {
		areaID, areaErr := kernel.UUIDFromString(raw)
		if areaErr != nil {
			return nil, areaErr
		}
		areaIDs = append(areaIDs, areaID)
	}

	var shift *partner.Shift
	if dto.ShiftStart != nil && dto.ShiftEnd != nil {
		start, shiftErr := kernel.ParseTimeOfDay(*dto.ShiftStart)
		if shiftErr != nil {
			return nil, shiftErr
		}
		end, shiftErr := kernel.ParseTimeOfDay(*dto.ShiftEnd)
		if shiftErr != nil {
			return nil, shiftErr
		}
		s, shiftErr := partner.NewShift(start, end)
		if shiftErr != nil {
			return nil, shiftErr
		}
		shift = &s
	}

	metrics, err := partner.NewMetrics(dto.Rating, dto.CompletedOrders, dto.CancelledOrders)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		status,
		dto.CurrentLoad,
		areaIDs,
		shift,
		metrics,
	)
}
