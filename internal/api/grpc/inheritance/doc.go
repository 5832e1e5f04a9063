// Package inheritance implements the gRPC transport for the vault service.
//
// Messages are plain Go structs carried by a CBOR codec that both the server
// and the client force, so no generated protobuf code is needed. The package
// declares the service descriptor, a typed client, and a server that adapts
// requests to a provided business-service interface.
package inheritance
