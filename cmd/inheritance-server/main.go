// Command inheritance-server runs the inheritance vault gRPC server.
package main

import "github.com/oshokin/inheritance-vault/cmd/inheritance-server/cmd"

func main() {
	cmd.Execute()
}
