// Command inheritance-cli talks to the inheritance vault server.
package main

import "github.com/oshokin/inheritance-vault/cmd/inheritance-cli/cmd"

func main() {
	cmd.Execute()
}
