// Package assignmentrepo provides data transfer objects and mapping
// functions for assignment record persistence. Records are append-only.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// outcome records. PartnerID is null for failed outcomes; Reason is null for
// successful ones.
type AssignmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(16);not null;index"`
	Reason    *string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for assignment records.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	var partnerID *uuid.UUID
	if aggregate.Partner() != nil {
		raw := aggregate.Partner().Bytes()
		partnerID = &raw
	}

	var reason *string
	if aggregate.Reason() != "" {
		r := aggregate.Reason()
		reason = &r
	}

	return AssignmentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		PartnerID: partnerID,
		Status:    aggregate.Status().String(),
		Reason:    reason,
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	var reason string
	if dto.Reason != nil {
		reason = *dto.Reason
	}

	return assignment.RestoreAssignment(id, orderID, partnerID, status, reason, dto.CreatedAt)
}
