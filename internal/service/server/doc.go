// Package server runs the inheritance vault gRPC server.
//
// Run loads the settings, opens the ledger, restores the custody engine from
// it and serves the InheritanceService until the context is canceled.
package server
