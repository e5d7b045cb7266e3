// Package services contains stateless domain services that coordinate
// multiple aggregates.
//
// The central service is PartnerMatcher: it matches one pending order to a
// delivery partner through a replaceable SelectionPolicy and executes the
// assignment workflow (partner load increment plus order assignment) on the
// in-memory aggregates. Persistence of the mutations is the caller's
// responsibility.
package services
