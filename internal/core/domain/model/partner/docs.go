// Package partner contains the DeliveryPartner aggregate and its value
// objects: the working Shift, the performance Metrics and the availability
// Status.
//
// A partner serves a set of areas, works an optional time-of-day shift and
// carries up to MaxLoad orders concurrently. The dispatch engine consults
// ServesArea, IsAvailableAt and HasCapacity when matching pending orders
// and mutates the load through IncrementLoad.
package partner
