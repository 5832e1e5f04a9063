// Package client implements the actions behind the inheritance-cli commands.
//
// Run loads the settings, detects the local actor, connects to the vault
// server as the chosen caller and executes one Action, which prints its
// result to the configured writer.
package client
