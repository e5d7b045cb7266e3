package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to change a partner's status,
// served areas, working shift or performance metrics. A nil shift clears
// the current one; nil metrics leave the current figures untouched.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	status    partner.Status
	areaIDs   []kernel.UUID
	shift     *partner.Shift
	metrics   *partner.Metrics

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update an existing partner.
// Validates the partner ID, the target status and the served area list.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	status partner.Status,
	areaIDs []kernel.UUID,
	shift *partner.Shift,
	metrics *partner.Metrics,
) (UpdatePartnerCommand, error) {
	partnerCommand := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setStatus(status),
		partnerCommand.setAreaIDs(areaIDs),
		partnerCommand.setShift(shift),
		partnerCommand.setMetrics(metrics),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePartnerCommandIsNotConstructed if validation fails.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Status returns the target status.
func (c UpdatePartnerCommand) Status() partner.Status {
	return c.status
}

// AreaIDs returns the identifiers of areas the partner should serve.
func (c UpdatePartnerCommand) AreaIDs() []kernel.UUID {
	return c.areaIDs
}

// Shift returns the working shift to set, or nil to clear it.
func (c UpdatePartnerCommand) Shift() *partner.Shift {
	return c.shift
}

// Metrics returns the performance figures to set, or nil to keep the
// current ones.
func (c UpdatePartnerCommand) Metrics() *partner.Metrics {
	return c.metrics
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerCommand) setStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdatePartnerCommand) setAreaIDs(areaIDs []kernel.UUID) error {
	if len(areaIDs) == 0 {
		return ErrAreaIDsAreRequired
	}

	for _, areaID := range areaIDs {
		if err := areaID.Validate(); err != nil {
			return err
		}
	}

	c.areaIDs = areaIDs
	return nil
}

func (c *UpdatePartnerCommand) setShift(shift *partner.Shift) error {
	if shift != nil {
		if err := shift.Validate(); err != nil {
			return err
		}
	}

	c.shift = shift
	return nil
}

func (c *UpdatePartnerCommand) setMetrics(metrics *partner.Metrics) error {
	c.metrics = metrics
	return nil
}
