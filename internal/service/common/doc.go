// Package common holds helpers shared by several services.
//
// It provides a gRPC client for the inheritance service with call timeouts
// and utilities to detect the current system actor (hostname/username) for
// audit purposes.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
