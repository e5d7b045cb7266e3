package partner

import (
	"dispatch/internal/pkg/errs"
)

const (
	ratingMin = 0.0
	ratingMax = 5.0
)

// Metrics holds a partner's performance counters: the average customer
// rating and the number of completed and cancelled orders.
//
// Metrics is a plain value object. The zero value (no rating, no orders)
// is a legitimate state for a freshly registered partner.
type Metrics struct {
	rating          float64
	completedOrders int
	cancelledOrders int
}

// NewMetrics creates a Metrics value with validation.
//
// Parameters:
//   - rating: average rating in [0.0 .. 5.0]
//   - completedOrders: non-negative completed order count
//   - cancelledOrders: non-negative cancelled order count
//
// Returns:
//   - Metrics: the metrics value if all validations pass
//   - error: range validation error otherwise
func NewMetrics(rating float64, completedOrders, cancelledOrders int) (Metrics, error) {
	if rating < ratingMin || rating > ratingMax {
		return Metrics{}, errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	if completedOrders < 0 {
		return Metrics{}, errs.NewValueIsInvalidError("completedOrders")
	}
	if cancelledOrders < 0 {
		return Metrics{}, errs.NewValueIsInvalidError("cancelledOrders")
	}

	return Metrics{
		rating:          rating,
		completedOrders: completedOrders,
		cancelledOrders: cancelledOrders,
	}, nil
}

// Rating returns the partner's average rating.
func (m Metrics) Rating() float64 {
	return m.rating
}

// CompletedOrders returns the number of orders the partner delivered.
func (m Metrics) CompletedOrders() int {
	return m.completedOrders
}

// CancelledOrders returns the number of orders cancelled on the partner.
func (m Metrics) CancelledOrders() int {
	return m.cancelledOrders
}

// RecordCompleted returns a copy of the metrics with the completed order
// counter incremented.
func (m Metrics) RecordCompleted() Metrics {
	m.completedOrders++
	return m
}

// RecordCancelled returns a copy of the metrics with the cancelled order
// counter incremented.
func (m Metrics) RecordCancelled() Metrics {
	m.cancelledOrders++
	return m
}
