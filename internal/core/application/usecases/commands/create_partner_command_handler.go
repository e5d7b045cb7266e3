package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

// ErrPartnerEmailAlreadyExists is returned when another partner is already
// registered with the same email address.
var ErrPartnerEmailAlreadyExists = errors.New("partner with this email already exists")

// CreatePartnerCommandHandler handles the business logic for partner
// registration. New partners start Active with zero load.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
// Requires a PartnerUoWFactory for transactional persistence.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
// Rejects duplicate emails, verifies every referenced area exists, then
// persists the new partner. An optional shift is attached before saving.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	if _, err := partnerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrPartnerEmailAlreadyExists
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	areaRepo := uow.AreaRepository()
	for _, areaID := range cmd.AreaIDs() {
		if _, err := areaRepo.Get(ctx, areaID); err != nil {
			return err
		}
	}

	newPartner, err := partner.NewPartner(
		cmd.PartnerID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.AreaIDs(),
	)
	if err != nil {
		return err
	}

	if cmd.Shift() != nil {
		if err = newPartner.SetShift(*cmd.Shift()); err != nil {
			return err
		}
	}

	if err = partnerRepo.Add(ctx, newPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
