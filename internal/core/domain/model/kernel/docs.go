// Package kernel provides the shared value objects of the cargo dispatch domain.
//
// The package includes:
//   - UUID: identifier for top-up proofs, wrapping github.com/google/uuid
//   - Route: origin and destination of a delivery request
//   - Contact: username and phone pair used to reach a party
//   - Weight: non-negative cargo weight backed by shopspring/decimal
//   - AccountStatus: active/blocked flag shared by carriers and requesters
//
// All value objects are immutable and must be created via their constructors;
// zero values fail Validate.
package kernel
