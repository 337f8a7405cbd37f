// Package order provides the Order aggregate root and its lifecycle state
// machine for the cargo dispatch system.
//
// The package includes:
//   - Order: a delivery request with route, cargo, vehicle class, fee and assignment
//   - Status: the AwaitingPrice -> Open -> Taken -> Done state machine
//   - VehicleClass and CreatorRole: closed enumerations carried by every order
//
// Key business rules:
//   - The fee is absent exactly while the order is AwaitingPrice and is set once
//   - A carrier is assigned exactly while the order is Taken or Done
//   - Only the assigned carrier may complete an order
//   - Orders are never deleted
package order
