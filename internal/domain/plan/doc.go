// Package plan contains the core domain types of the inheritance vault.
//
// It defines the Address identity, the Plan record with its bounded
// Beneficiaries set, the share calculator used when a plan is locked and the
// error taxonomy shared by every layer above it. Nothing in this package
// performs I/O.
package plan
