package services

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no suitable partner is available for
// an order. This occurs when no provided partner serves the order's area
// with a shift covering the scheduled time and free capacity.
var ErrPartnerNotFound = errors.New("partner not found")

// SelectionPolicy decides which partner, if any, takes a given order.
// The policy only selects; it never mutates the order or the partners.
//
// Implementations must return ErrPartnerNotFound when no candidate
// qualifies, so callers can distinguish "no match" from real failures.
//
// The default policy is FirstFitPolicy. Alternative strategies (least
// loaded, rating weighted) can be plugged in without touching the matcher.
type SelectionPolicy interface {
	// Select returns the partner that should take the order, or
	// ErrPartnerNotFound if no candidate qualifies.
	Select(o *order.Order, partners []*partner.Partner) (*partner.Partner, error)
}

// FirstFitPolicy selects the first partner, in input order, that can take
// the order. A partner qualifies when all three hold:
//   - the partner serves the order's area
//   - the partner's shift covers the order's scheduled time (a partner
//     with no shift never qualifies; boundaries are inclusive)
//   - the partner has free capacity (current load below partner.MaxLoad)
//
// The capacity check is evaluated against the partner's current in-memory
// load, so a partner filled up earlier in a dispatch run is correctly
// skipped for later orders.
type FirstFitPolicy struct{}

// NewFirstFitPolicy creates a new FirstFitPolicy instance.
func NewFirstFitPolicy() FirstFitPolicy {
	return FirstFitPolicy{}
}

// Select returns the first qualifying partner in input order.
//
// Parameters:
//   - o: The order to place (must be valid)
//   - partners: Candidate partners, evaluated in slice order
//
// Returns:
//   - *partner.Partner: The first qualifying partner
//   - error: ErrPartnerNotFound if none qualifies, or validation errors
func (FirstFitPolicy) Select(o *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if p.ServesArea(o.AreaID()) && p.IsAvailableAt(o.ScheduledFor()) && p.HasCapacity() {
			return p, nil
		}
	}

	return nil, ErrPartnerNotFound
}

// PartnerMatcher is a domain service responsible for matching one pending
// order to a delivery partner and executing the assignment workflow.
//
// Key responsibilities:
//   - Validating the order before matching
//   - Delegating candidate selection to the configured SelectionPolicy
//   - Applying the assignment atomically on the in-memory aggregates:
//     partner load increment plus order status change
//
// Business rules:
//   - Only Pending orders can be matched
//   - The selected partner's load never exceeds partner.MaxLoad
//   - Mutations are visible to subsequent Match calls over the same
//     partner slice, which is what a dispatch run relies on
//
// Example usage:
//
//	matcher := services.NewPartnerMatcher()
//	matched, err := matcher.Match(pendingOrder, activePartners)
//	if errors.Is(err, services.ErrPartnerNotFound) {
//	    // Record a failed outcome for this order
//	    return
//	}
type PartnerMatcher struct {
	policy SelectionPolicy
}

// NewPartnerMatcher creates a PartnerMatcher with the default first-fit
// selection policy.
func NewPartnerMatcher() PartnerMatcher {
	return PartnerMatcher{policy: NewFirstFitPolicy()}
}

// NewPartnerMatcherWithPolicy creates a PartnerMatcher with a custom
// selection policy. Passing nil falls back to the default first-fit policy.
func NewPartnerMatcherWithPolicy(policy SelectionPolicy) PartnerMatcher {
	if policy == nil {
		policy = NewFirstFitPolicy()
	}
	return PartnerMatcher{policy: policy}
}

// Match finds a partner for the given order and executes the assignment
// workflow on the in-memory aggregates.
//
// Parameters:
//   - o: The order to match (must be valid and Pending)
//   - partners: Candidate partners to consider
//
// Returns:
//   - *partner.Partner: The partner the order was assigned to
//   - error: ErrPartnerNotFound if no suitable partner exists, or
//     validation/assignment errors
//
// On success the selected partner's load is incremented and the order
// transitions to Assigned with the partner recorded. On any error both
// aggregates are left unchanged.
func (m PartnerMatcher) Match(o *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	matched, err := m.policy.Select(o, partners)
	if err != nil {
		return nil, err
	}

	if err = matched.IncrementLoad(); err != nil {
		return nil, err
	}

	if err = o.Assign(matched.ID()); err != nil {
		// Roll the load back so a failed assignment leaves no trace.
		_ = matched.DecrementLoad()
		return nil, err
	}

	return matched, nil
}
