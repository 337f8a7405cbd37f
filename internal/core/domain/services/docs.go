// Package services provides domain services that coordinate rules spanning
// more than one aggregate in the dispatch system.
//
// The package includes:
//   - OrderAcceptor: decides whether a carrier may take an order and performs the assignment
//   - DispatcherRoster: the configured set of dispatcher identities
//
// Domain services hold no state beyond their configuration and never touch storage.
package services
